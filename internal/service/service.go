package service

import (
	"context"

	"checkcheck/internal/cart"
	"checkcheck/internal/model"

	"github.com/google/uuid"
)

// AccountService defines operations for customer accounts.
type AccountService interface {
	// LoginOrSignup authenticates or registers by phone. Whether this is
	// a signup is inferred from the presence of name/address, not stated
	// by the caller.
	LoginOrSignup(ctx context.Context, phone, password, name, address string) (*model.User, error)

	// UpdateProfile changes the name and address of an existing account.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, address string) (*model.User, error)
}

// OrderService defines operations for order submission and management.
type OrderService interface {
	// Submit creates an order from the customer's cart, freezing the
	// current line prices.
	Submit(ctx context.Context, req *model.OrderRequest, c *cart.Cart) (*model.Order, error)

	// ListForCustomer retrieves a customer's orders, newest first.
	ListForCustomer(ctx context.Context, phone string) ([]model.Order, error)

	// ListAll retrieves all orders, newest first, optionally filtered by
	// status.
	ListAll(ctx context.Context, status string) ([]model.Order, error)

	// UpdateStatus applies an admin status change. Any status may be set
	// from any status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// PasswordResetService drives the three-step SMS password-reset flow.
type PasswordResetService interface {
	// RequestCode issues a fresh code for phone and dispatches it by SMS.
	RequestCode(ctx context.Context, phone string) error

	// VerifyCode checks a submitted code and opens the reset window.
	VerifyCode(ctx context.Context, phone, code string) error

	// ResetPassword re-validates the code and sets the new password.
	ResetPassword(ctx context.Context, phone, code, newPassword string) error
}
