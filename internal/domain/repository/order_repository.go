package repository

import (
	"context"
	"errors"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
//
// The order workflow deliberately issues each write as its own atomic unit:
// Create, CreateItem and the payment insert never share a transaction, so a
// failure mid-workflow leaves the earlier rows in place.
type OrderRepository interface {
	// FindByID retrieves an order header without its associations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindBySellerKey retrieves all orders placed against a seller key,
	// each joined with its items and payment.
	FindBySellerKey(ctx context.Context, sellerKey string) ([]*entity.Order, error)

	// FindByCustomerID retrieves all orders placed by a customer,
	// each joined with its items and payment.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order header.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItem persists a single order line. Items are immutable once written.
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// UpdateStatus overwrites the order status unconditionally.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
