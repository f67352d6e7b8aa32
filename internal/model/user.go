package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account. The phone number is the login
// identifier and is unique across accounts.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Phone        string    `json:"phone" db:"phone"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address" db:"address"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// LoginRequest is the payload for the merged login/signup operation.
// Name and Address are only set when creating a new account; their
// presence is what distinguishes a signup attempt from a login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ProfileUpdateRequest is the payload for updating account details.
type ProfileUpdateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
