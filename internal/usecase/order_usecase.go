package usecase

import (
	"context"

	"pasar/internal/domain/entity"
	"pasar/internal/domain/service"

	"github.com/google/uuid"
)

// CreateOrderInput carries the order lines. ProductIDs and Quantities are
// index-aligned and must have the same length. TotalAmount is caller-supplied
// and deliberately not recomputed server-side.
type CreateOrderInput struct {
	ProductIDs  []uuid.UUID
	Quantities  []int
	TotalAmount float64
}

// CreateOrderOutput returns the created order header and the raw gateway
// answer.
type CreateOrderOutput struct {
	Order          *entity.Order
	ChargeResponse *service.ChargeResult
}

// OrderUsecase defines the interface for the order/payment workflow.
//
// CreateOrder runs its writes as independent atomic units with no shared
// transaction and no compensation: a failure partway leaves the order header
// and any already-written items in place.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*CreateOrderOutput, error)

	// GetOrdersBySeller lists the orders placed against the caller's
	// storefront, joined with items and payment.
	GetOrdersBySeller(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrdersByCustomer lists the caller's own orders, joined with items
	// and payment.
	GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder flips the order to Cancelled unconditionally. Repeating the
	// call succeeds and leaves the status Cancelled; the payment is untouched.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
