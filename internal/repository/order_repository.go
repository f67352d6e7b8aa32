package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"checkcheck/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order. Line items are stored as a JSONB snapshot.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (
			id, customer_name, customer_phone, customer_address, delivery_location,
			items, subtotal, delivery_fee, total, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerAddress,
		order.DeliveryZone,
		items,
		order.Subtotal,
		order.DeliveryFee,
		order.Total,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

const selectOrder = `
	SELECT id, customer_name, customer_phone, customer_address, delivery_location,
	       items, subtotal, delivery_fee, total, status, created_at, updated_at
	FROM orders
`

// ListAll retrieves all orders, newest first.
func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := selectOrder + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// ListByStatus retrieves all orders with the given status, newest first.
func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := selectOrder + ` WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		r.logger.Error().Err(err).Str("status", string(status)).Msg("failed to query orders by status")
		return nil, fmt.Errorf("failed to query orders by status: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// ListByPhone retrieves a customer's orders, newest first.
func (r *orderRepository) ListByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	query := selectOrder + ` WHERE customer_phone = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, phone)
	if err != nil {
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to query orders by phone")
		return nil, fmt.Errorf("failed to query orders by phone: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// UpdateStatus sets the status and updated_at of an order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, updatedAt time.Time) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return model.ErrOrderNotFound
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}

// collect scans order rows, decoding the JSONB item snapshot.
func (r *orderRepository) collect(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var items []byte
		err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.CustomerAddress,
			&o.DeliveryZone,
			&items,
			&o.Subtotal,
			&o.DeliveryFee,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			r.logger.Error().Err(err).Str("order_id", o.ID.String()).Msg("failed to decode order items")
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
