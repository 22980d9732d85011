package usecase

import (
	"context"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields for a new catalog item. Image is
// required.
type CreateProductInput struct {
	ProductName  string
	Category     string
	ProductPrice float64
	Image        *FileUpload
}

// UpdateProductInput modifies an existing catalog item by id. Image is
// optional; when absent the stored image URL is kept.
type UpdateProductInput struct {
	ID           uuid.UUID
	ProductName  string
	Category     string
	ProductPrice float64
	Image        *FileUpload
}

// ProductUsecase defines the interface for catalog operations. Every call is
// scoped to the caller's storefront through the derived seller key.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	GetProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, userID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product only when the caller's seller key
	// matches the product's stored owner key.
	DeleteProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
}
