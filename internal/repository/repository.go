package repository

import (
	"context"
	"time"

	"checkcheck/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetByPhone retrieves the account registered under phone, or nil if
	// no account exists.
	GetByPhone(ctx context.Context, phone string) (*model.User, error)

	// Create inserts a new account. A concurrent signup on the same phone
	// surfaces as model.ErrPhoneTaken.
	Create(ctx context.Context, user *model.User) error

	// Update changes the name and address of an account.
	Update(ctx context.Context, id uuid.UUID, name, address string) (*model.User, error)

	// UpdatePasswordByPhone replaces the password hash of the account
	// registered under phone.
	UpdatePasswordByPhone(ctx context.Context, phone, passwordHash string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order.
	Create(ctx context.Context, order *model.Order) error

	// ListAll retrieves all orders, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ListByStatus retrieves all orders with the given status, newest first.
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)

	// ListByPhone retrieves a customer's orders, newest first.
	ListByPhone(ctx context.Context, phone string) ([]model.Order, error)

	// UpdateStatus sets the status and updated_at of an order. Returns
	// model.ErrOrderNotFound when no order matches id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, updatedAt time.Time) error
}
