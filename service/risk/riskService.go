package risk

import (
	"context"
	"sort"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
)

// Service classifies customers for operator triage. It is read-only: the
// penalties it reconstructs are already reflected in each customer's point
// balance by the store, so nothing here writes back.
type Service interface {
	Assess(ctx context.Context) ([]model.RiskProfile, error)
}

type service struct {
	store orderstore.Repo
}

func New(store orderstore.Repo) Service { return &service{store: store} }

func (s *service) Assess(ctx context.Context) ([]model.RiskProfile, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return Classify(customers, orders), nil
}

// Classify restricts to the Customer role, groups each customer's cancelled
// orders, derives the tier from the point balance (absent balance counts as
// the default), and reconstructs the per-cancellation penalty history. A
// customer with no cancellations still lands in whatever tier their points
// imply.
func Classify(customers []model.Customer, orders []model.RentalOrder) []model.RiskProfile {
	cancelled := make(map[int64][]model.RentalOrder)
	for _, o := range orders {
		if o.Status == model.StatusCancelled {
			cancelled[o.CustomerID] = append(cancelled[o.CustomerID], o)
		}
	}

	profiles := make([]model.RiskProfile, 0, len(customers))
	for _, c := range customers {
		if c.Role != model.RoleCustomer {
			continue
		}
		point := c.PointOrDefault()

		history := make([]model.CancelledOrder, 0, len(cancelled[c.ID]))
		for _, o := range cancelled[c.ID] {
			// A cancelled order with no timestamp counts as late.
			within, penalty := false, 10
			if o.CancelledAt != nil {
				within = model.CancelledWithinWindow(o.OrderDate, *o.CancelledAt)
				penalty = model.PenaltyFor(o.OrderDate, *o.CancelledAt)
			}
			history = append(history, model.CancelledOrder{
				Order:        o,
				Within1Hour:  within,
				PenaltyPoint: penalty,
			})
		}

		profiles = append(profiles, model.RiskProfile{
			CustomerID:      c.ID,
			FullName:        c.FullName,
			CurrentPoint:    point,
			RiskLevel:       model.RiskLevelFor(point),
			CancelledOrders: history,
		})
	}

	// Most urgent tier first, then lowest points first within a tier.
	sort.SliceStable(profiles, func(i, j int) bool {
		si, sj := profiles[i].RiskLevel.Severity(), profiles[j].RiskLevel.Severity()
		if si != sj {
			return si < sj
		}
		return profiles[i].CurrentPoint < profiles[j].CurrentPoint
	})
	return profiles
}
