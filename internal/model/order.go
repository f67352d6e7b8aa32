package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the state of an order as managed from the admin dashboard.
type OrderStatus string

// Order statuses. The admin surface may set any status from any status;
// there is no enforced progression.
const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusDelivered  OrderStatus = "delivered"
)

// Statuses lists all order statuses in display order.
func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusReady, StatusDelivered}
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// OrderItem is a frozen snapshot of a cart line at submission time.
// Later menu price changes must not alter historical orders.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents a customer order.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	CustomerPhone   string      `json:"customerPhone" db:"customer_phone"`
	CustomerAddress string      `json:"customerAddress" db:"customer_address"`
	DeliveryZone    string      `json:"deliveryZone" db:"delivery_location"`
	Items           []OrderItem `json:"items" db:"items"`
	Subtotal        float64     `json:"subtotal" db:"subtotal"`
	DeliveryFee     float64     `json:"deliveryFee" db:"delivery_fee"`
	Total           float64     `json:"total" db:"total"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderRequest is the payload for submitting an order. The items and
// delivery zone come from the caller's cart, not from this payload.
type OrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress,omitempty"`
}

// StatusUpdateRequest is the payload for an admin status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
