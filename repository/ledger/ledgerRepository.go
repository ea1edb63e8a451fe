package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/esley2005/FE-EV-Rental-sub001/util/database"
)

// Repo is the processed-callback ledger. Gateways redeliver redirects
// (duplicate callback, back button, retry); the transaction reference is the
// dedupe key that makes the confirmation an explicitly idempotent command
// instead of one that merely hopes the store is idempotent.
type Repo interface {
	// Record inserts the txn ref and reports whether this is the first
	// delivery. A replay returns (false, nil).
	Record(ctx context.Context, gateway, txnRef, resultCode string) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Record(ctx context.Context, gateway, txnRef, resultCode string) (bool, error) {
	const q = `
		INSERT INTO payment_callbacks (gateway, txn_ref, result_code, received_at)
		VALUES ($1, $2, $3, now())`
	if _, err := r.db.Pool.Exec(ctx, q, gateway, txnRef, resultCode); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
