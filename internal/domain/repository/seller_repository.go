package repository

import (
	"context"
	"errors"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when no storefront exists for the given key.
var ErrSellerNotFound = errors.New("seller not found")

// ErrSellerExists is returned when a storefront already exists for the user.
var ErrSellerExists = errors.New("seller already exists")

// SellerRepository defines the standard operations for storefront persistence.
// Sellers are keyed 1-1 by the owning user's id.
type SellerRepository interface {
	// FindByUserID retrieves the storefront owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)

	// Create persists a new storefront.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update modifies an existing storefront.
	Update(ctx context.Context, seller *entity.Seller) error

	// DeleteByUserID removes the storefront owned by the given user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
