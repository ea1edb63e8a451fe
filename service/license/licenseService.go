package license

import (
	"context"
	"log/slog"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
)

// Service answers "is this customer's driver license currently approved?".
// Two sources exist: the profile aggregate (cheap, checked first) and the
// dedicated license record. A network failure on either source counts as
// "not verified" for that source only — the check never aborts, and it never
// returns an error. Callers that need a hard guarantee must simply ask again.
type Service interface {
	Verify(ctx context.Context, sess model.Session, customerID int64) model.LicenseVerificationResult
}

type service struct {
	store orderstore.Repo
	log   *slog.Logger
}

func New(store orderstore.Repo, log *slog.Logger) Service {
	return &service{store: store, log: log}
}

func (s *service) Verify(ctx context.Context, sess model.Session, customerID int64) model.LicenseVerificationResult {
	profile, err := s.store.GetCustomerProfile(ctx, sess)
	if err != nil {
		s.log.Warn("license check: profile lookup failed", "customer_id", customerID, "err", err)
	} else if profile.DriverLicenseStatus == model.LicenseApproved {
		return model.LicenseVerificationResult{Verified: true, Source: model.LicenseSourceProfile}
	}

	rec, err := s.store.GetCurrentLicense(ctx, customerID)
	if err != nil {
		s.log.Warn("license check: record lookup failed", "customer_id", customerID, "err", err)
	} else if rec.Status == model.LicenseApproved {
		return model.LicenseVerificationResult{Verified: true, Source: model.LicenseSourceRecord}
	}

	return model.LicenseVerificationResult{Verified: false, Source: model.LicenseSourceNone}
}
