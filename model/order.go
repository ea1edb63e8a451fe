// model/order.go
package model

import "time"

// OrderStatus mirrors the numeric status codes used by the order store.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusDocumentsSubmitted
	StatusDepositPending
	StatusConfirmed
	StatusRenting
	StatusReturned
	StatusAwaitingPayment
	StatusCancelled
	StatusCompleted
)

var statusNames = map[OrderStatus]string{
	StatusPending:            "PENDING",
	StatusDocumentsSubmitted: "DOCUMENTS_SUBMITTED",
	StatusDepositPending:     "DEPOSIT_PENDING",
	StatusConfirmed:          "CONFIRMED",
	StatusRenting:            "RENTING",
	StatusReturned:           "RETURNED",
	StatusAwaitingPayment:    "AWAITING_PAYMENT",
	StatusCancelled:          "CANCELLED",
	StatusCompleted:          "COMPLETED",
}

func (s OrderStatus) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

func (s OrderStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Terminal statuses accept no outgoing transition, including to Cancelled.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// allowedNext is the full transition table: the forward chain
// Pending → DocumentsSubmitted → DepositPending → Confirmed → Renting →
// Returned → Completed, plus the AwaitingPayment side branch which is entered
// before the deposit is paid and rejoins the chain once payment clears.
// Cancellation is handled separately in CanTransition.
var allowedNext = map[OrderStatus][]OrderStatus{
	StatusPending:            {StatusDocumentsSubmitted, StatusAwaitingPayment},
	StatusDocumentsSubmitted: {StatusDepositPending, StatusAwaitingPayment},
	StatusDepositPending:     {StatusConfirmed},
	StatusConfirmed:          {StatusRenting},
	StatusRenting:            {StatusReturned},
	StatusReturned:           {StatusCompleted},
	StatusAwaitingPayment:    {StatusDepositPending, StatusConfirmed},
}

// CanTransition reports whether from → to is a legal order transition.
// Callers must treat false as an error, never as a silent no-op.
func CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

type RentalOrder struct {
	ID                 int64       `json:"id"`
	CustomerID         int64       `json:"customer_id"`
	CarID              int64       `json:"car_id"`
	LocationID         int64       `json:"location_id"`
	Status             OrderStatus `json:"status"`
	OrderDate          time.Time   `json:"order_date"`
	PickupTime         time.Time   `json:"pickup_time"`
	ExpectedReturnTime time.Time   `json:"expected_return_time"`
	ActualReturnTime   *time.Time  `json:"actual_return_time,omitempty"`
	CancelledAt        *time.Time  `json:"cancelled_at,omitempty"`
	Total              float64     `json:"total"`
	Deposit            float64     `json:"deposit"`
}
