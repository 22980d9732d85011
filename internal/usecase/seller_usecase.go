package usecase

import (
	"context"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerInput carries the storefront fields. Image is required on create and
// optional on update; when present the blob is uploaded before the record is
// written, so a persisted record never references a missing blob.
type SellerInput struct {
	StoreName           string
	StoreDescription    string
	StoreAddress        string
	StoreCoordinates    string
	CustomGoogleMapLink string
	Image               *FileUpload
}

// SellerUsecase defines the interface for storefront operations, all scoped
// to the caller's user id.
type SellerUsecase interface {
	CreateSeller(ctx context.Context, userID uuid.UUID, input *SellerInput) (*entity.Seller, error)
	GetSeller(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)

	// UpdateSeller degrades to create when the caller has no storefront yet.
	UpdateSeller(ctx context.Context, userID uuid.UUID, input *SellerInput) (*entity.Seller, error)
	DeleteSeller(ctx context.Context, userID uuid.UUID) error
}
