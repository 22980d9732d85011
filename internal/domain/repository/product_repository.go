package repository

import (
	"context"
	"errors"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a catalog item does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// Products reference their owner through the legacy seller display key.
type ProductRepository interface {
	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySellerKey retrieves every product owned by the given seller key.
	FindBySellerKey(ctx context.Context, sellerKey string) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
