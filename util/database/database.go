package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct{ Pool *pgxpool.Pool }

func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db := &DB{Pool: p}
	if err := db.ensureSchema(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return db, nil
}

// The service owns a single table; bootstrapping it here beats carrying a
// migrations tool for one DDL statement.
func (d *DB) ensureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS payment_callbacks (
			id          BIGSERIAL PRIMARY KEY,
			gateway     TEXT        NOT NULL,
			txn_ref     TEXT        NOT NULL UNIQUE,
			result_code TEXT        NOT NULL,
			received_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	_, err := d.Pool.Exec(ctx, q)
	return err
}

func (d *DB) Close() { d.Pool.Close() }
