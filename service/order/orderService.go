package ordersvc

import (
	"context"
	"errors"
	"time"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrIllegalTransition ErrCode = "ILLEGAL_TRANSITION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// CancelResult carries the penalty preview alongside the cancelled order:
// quick cancellations (within an hour of placing the order) cost 5 points,
// later ones 10. The store applies the deduction; we report it.
type CancelResult struct {
	Order        model.RentalOrder `json:"order"`
	Within1Hour  bool              `json:"within_1_hour"`
	PenaltyPoint int               `json:"penalty_point"`
}

type Service interface {
	// Get returns the order snapshot; customers only see their own orders.
	Get(ctx context.Context, sess model.Session, id int64) (*model.RentalOrder, error)

	// Cancel moves the order to Cancelled if the status model allows it.
	// Here an illegal transition is the primary requested operation, so it
	// is surfaced, never swallowed.
	Cancel(ctx context.Context, sess model.Session, id int64) (*CancelResult, error)

	// UpdateStatus is the staff operation behind the admin dashboard.
	UpdateStatus(ctx context.Context, sess model.Session, id int64, target model.OrderStatus) (*model.RentalOrder, error)
}

type service struct {
	store orderstore.Repo
	now   func() time.Time
}

func New(store orderstore.Repo) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Get(ctx context.Context, sess model.Session, id int64) (*model.RentalOrder, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, orderstore.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !sess.IsStaff() && order.CustomerID != sess.UserID {
		return nil, makeErr(ErrForbidden)
	}
	return order, nil
}

func (s *service) Cancel(ctx context.Context, sess model.Session, id int64) (*CancelResult, error) {
	order, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, model.StatusCancelled) {
		return nil, makeErr(ErrIllegalTransition)
	}

	upd, err := s.store.UpdateOrderStatus(ctx, id, model.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !upd.Success {
		return nil, makeErr(ErrIllegalTransition)
	}

	cancelledAt := s.now().UTC()
	order.Status = model.StatusCancelled
	order.CancelledAt = &cancelledAt
	return &CancelResult{
		Order:        *order,
		Within1Hour:  model.CancelledWithinWindow(order.OrderDate, cancelledAt),
		PenaltyPoint: model.PenaltyFor(order.OrderDate, cancelledAt),
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, sess model.Session, id int64, target model.OrderStatus) (*model.RentalOrder, error) {
	if !sess.IsStaff() {
		return nil, makeErr(ErrForbidden)
	}
	if !target.Valid() {
		return nil, makeErr(ErrIllegalTransition)
	}
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, orderstore.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !model.CanTransition(order.Status, target) {
		return nil, makeErr(ErrIllegalTransition)
	}

	upd, err := s.store.UpdateOrderStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	if !upd.Success {
		return nil, makeErr(ErrIllegalTransition)
	}
	order.Status = target
	return order, nil
}
