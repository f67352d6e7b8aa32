package service

import (
	"context"
	"fmt"
	"time"

	"checkcheck/internal/cart"
	"checkcheck/internal/model"
	"checkcheck/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orders repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orders: orders,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Submit creates an order from the customer's cart. The cart lines are
// frozen into the order as a value snapshot so later menu price changes
// cannot alter it.
func (s *orderService) Submit(ctx context.Context, req *model.OrderRequest, c *cart.Cart) (*model.Order, error) {
	if err := validateOrderRequest(req, c); err != nil {
		return nil, err
	}

	totals := c.Totals()
	now := time.Now()

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		DeliveryZone:    c.Zone.Name,
		Items:           c.Snapshot(),
		Subtotal:        totals.Subtotal,
		DeliveryFee:     totals.DeliveryFee,
		Total:           totals.Total,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_phone", order.CustomerPhone).
		Float64("total", order.Total).
		Msg("order submitted")

	return order, nil
}

// ListForCustomer retrieves a customer's orders, newest first.
func (s *orderService) ListForCustomer(ctx context.Context, phone string) ([]model.Order, error) {
	orders, err := s.orders.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("failed to list customer orders")
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves all orders, optionally filtered by status.
func (s *orderService) ListAll(ctx context.Context, status string) ([]model.Order, error) {
	if status != "" {
		st := model.OrderStatus(status)
		if !st.Valid() {
			return nil, model.ErrInvalidStatus
		}
		orders, err := s.orders.ListByStatus(ctx, st)
		if err != nil {
			s.logger.Error().Err(err).Str("status", status).Msg("failed to list orders by status")
			return nil, fmt.Errorf("failed to list orders by status: %w", err)
		}
		return orders, nil
	}

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies an admin status change. Transitions are not
// constrained: any status may be set from any status, which allows manual
// correction. Concurrent edits are last-write-wins.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	st := model.OrderStatus(status)
	if !st.Valid() {
		s.logger.Warn().Str("order_id", id.String()).Str("status", status).Msg("unknown order status")
		return model.ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, id, st, time.Now()); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return nil
}

// validateOrderRequest checks the submission against the cart state.
func validateOrderRequest(req *model.OrderRequest, c *cart.Cart) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}
	if req.CustomerName == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Customer name is required")
	}
	if req.CustomerPhone == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Customer phone is required")
	}
	if c == nil || len(c.Lines) == 0 {
		return model.ErrEmptyCart
	}
	if c.Zone == nil {
		return model.ErrNoZoneSelected
	}
	return nil
}
