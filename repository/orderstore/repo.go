package orderstore

import (
	"context"
	"errors"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
)

// ErrNotFound maps the store's 404 responses.
var ErrNotFound = errors.New("order store: not found")

// ConfirmResult is the store's answer to a deposit confirmation. The call is
// idempotent on the store side; a replayed transaction reference comes back
// with AlreadyConfirmed set and must be treated as success.
type ConfirmResult struct {
	Success          bool
	AlreadyConfirmed bool
	OrderID          int64
	Message          string
}

type UpdateStatusResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Repo interface {
	ConfirmDeposit(ctx context.Context, txnRef, resultCode string) (*ConfirmResult, error)
	GetOrder(ctx context.Context, id int64) (*model.RentalOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*UpdateStatusResult, error)

	GetCustomerProfile(ctx context.Context, sess model.Session) (*model.CustomerProfile, error)
	GetCurrentLicense(ctx context.Context, customerID int64) (*model.LicenseRecord, error)

	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListOrders(ctx context.Context) ([]model.RentalOrder, error)

	ListCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id int64) (*model.Car, error)
}
