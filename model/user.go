package model

// Role values as the order store reports them.
const (
	RoleCustomer = "Customer"
	RoleStaff    = "Staff"
	RoleAdmin    = "Admin"
)

type Customer struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	// Point is nil when the store has never touched the balance; treat as
	// DefaultPoint.
	Point *int `json:"point,omitempty"`
}

// PointOrDefault resolves the absent-balance case in one place.
func (c Customer) PointOrDefault() int {
	if c.Point == nil {
		return DefaultPoint
	}
	return *c.Point
}

// CustomerProfile is the aggregate the store returns for the calling user.
// DriverLicenseStatus arrives in one of the three upstream encodings and is
// normalized at the store boundary.
type CustomerProfile struct {
	CustomerID          int64         `json:"customer_id"`
	FullName            string        `json:"full_name"`
	DriverLicenseStatus LicenseStatus `json:"driver_license_status"`
}

// LicenseRecord is the dedicated license lookup result.
type LicenseRecord struct {
	CustomerID int64         `json:"customer_id"`
	Status     LicenseStatus `json:"status"`
}
