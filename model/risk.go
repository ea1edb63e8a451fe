// model/risk.go
package model

import "time"

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
	RiskSafe   RiskLevel = "SAFE"
)

// DefaultPoint is assumed for customers whose point balance is absent.
const DefaultPoint = 100

// RiskLevelFor maps a point balance onto a tier. Boundaries are exact:
// 49 is HIGH, 50 is MEDIUM, 69 is MEDIUM, 70 is LOW, 89 is LOW, 90 is SAFE.
func RiskLevelFor(point int) RiskLevel {
	switch {
	case point < 50:
		return RiskHigh
	case point < 70:
		return RiskMedium
	case point < 90:
		return RiskLow
	default:
		return RiskSafe
	}
}

// Severity orders tiers for operator triage, most urgent first.
func (l RiskLevel) Severity() int {
	switch l {
	case RiskHigh:
		return 0
	case RiskMedium:
		return 1
	case RiskLow:
		return 2
	default:
		return 3
	}
}

const cancelPenaltyWindow = time.Hour

// CancelledWithinWindow reports whether the cancellation happened within one
// hour of the order being placed. Exactly 60 minutes still counts as inside.
func CancelledWithinWindow(orderDate, cancelledAt time.Time) bool {
	return !cancelledAt.Before(orderDate) && cancelledAt.Sub(orderDate) <= cancelPenaltyWindow
}

// PenaltyFor is the point deduction for a cancellation: quick cancellations
// cost 5, later ones 10.
func PenaltyFor(orderDate, cancelledAt time.Time) int {
	if CancelledWithinWindow(orderDate, cancelledAt) {
		return 5
	}
	return 10
}

// CancelledOrder is one reconstructed penalty-history entry. The points are
// already reflected in the customer's balance by the store; this record is
// display-only.
type CancelledOrder struct {
	Order        RentalOrder `json:"order"`
	Within1Hour  bool        `json:"within_1_hour"`
	PenaltyPoint int         `json:"penalty_point"`
}

// RiskProfile is the per-customer aggregate, recomputed on demand.
type RiskProfile struct {
	CustomerID      int64            `json:"customer_id"`
	FullName        string           `json:"full_name"`
	CurrentPoint    int              `json:"current_point"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	CancelledOrders []CancelledOrder `json:"cancelled_orders"`
}
