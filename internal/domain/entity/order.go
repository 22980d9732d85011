package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order status values. An order is created Pending and only ever mutated by
// status transitions; cancellation is unconditional and does not cascade to
// the payment.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"
	OrderStatusCompleted = "Completed"
)

// Order is the header row of a purchase. Items and the payment are created in
// separate writes after the order itself, so an order observed mid-creation
// may legitimately have no items or no payment attached.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	OrderNumber string      `json:"orderNumber"` // Unique per call, "ORD-" prefixed.
	OrderStatus string      `json:"orderStatus"`
	TotalAmount float64     `json:"totalAmount"` // Caller-supplied, not recomputed server-side.
	CustomerID  uuid.UUID   `json:"customerId"`
	SellerKey   string      `json:"sellerId"`
	Items       []OrderItem `json:"orderItems,omitempty"`
	Payment     *Payment    `json:"payment,omitempty"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

// OrderItem is one product line on an order. Immutable once created.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"` // Must be > 0.
	OrderID   uuid.UUID `json:"orderId"`
	CreatedAt time.Time `json:"-"`
}
