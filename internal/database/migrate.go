package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schema is the idempotent bootstrap DDL for the users and orders tables.
// Order line items are stored as a JSONB snapshot so historical orders are
// unaffected by later menu price changes.
const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		phone VARCHAR(20) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		address TEXT NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(20) NOT NULL,
		customer_address TEXT NOT NULL DEFAULT '',
		delivery_location VARCHAR(100) NOT NULL,
		items JSONB NOT NULL,
		subtotal DECIMAL(10, 2) NOT NULL,
		delivery_fee DECIMAL(10, 2) NOT NULL,
		total DECIMAL(10, 2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_orders_customer_phone ON orders(customer_phone);
	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
`

// Migrate applies the schema bootstrap. All statements are idempotent so
// this runs unconditionally at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("database schema up to date")
	return nil
}
