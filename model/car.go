// model/car.go
package model

type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarRented      CarStatus = "RENTED"
	CarMaintenance CarStatus = "MAINTENANCE"
)

type Car struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Seats        int       `json:"seats"`
	RangeKm      int       `json:"range_km"`
	PricePerDay  float64   `json:"price_per_day"`
	DepositRate  float64   `json:"deposit_rate"`
	LocationID   int64     `json:"location_id"`
	Status       CarStatus `json:"status"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}
