package impl

import (
	"context"
	"log/slog"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/domain/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	sellerRepo repository.SellerRepository
	blobStore  service.BlobStore
	logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(
	sellerRepo repository.SellerRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo: sellerRepo,
		blobStore:  blobStore,
		logger:     logger,
	}
}

// CreateSeller uploads the store image first and persists the record only
// after the store confirms durability.
func (srv *sellerService) CreateSeller(ctx context.Context, userID uuid.UUID, input *usecase.SellerInput) (*entity.Seller, error) {
	if input.Image == nil {
		return nil, domainerrors.ErrNoFileUploaded
	}

	imageURL, err := srv.blobStore.Upload(ctx, input.Image.Content, input.Image.ContentType, "sellers")
	if err != nil {
		srv.logger.Error("Store image upload failed", "error", err, "userID", userID)

		return nil, domainerrors.ErrUploadFailed
	}

	seller := &entity.Seller{
		StoreName:           input.StoreName,
		StoreDescription:    input.StoreDescription,
		StoreAddress:        input.StoreAddress,
		StoreCoordinates:    input.StoreCoordinates,
		CustomGoogleMapLink: input.CustomGoogleMapLink,
		StoreImage:          imageURL,
		UserID:              userID,
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to create seller")
	}

	return seller, nil
}

// GetSeller retrieves the caller's storefront.
func (srv *sellerService) GetSeller(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return seller, nil
}

// UpdateSeller modifies the caller's storefront, re-uploading the image when
// a new file is present. When no storefront exists yet the update degrades to
// a create.
func (srv *sellerService) UpdateSeller(ctx context.Context, userID uuid.UUID, input *usecase.SellerInput) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return srv.createOnUpdate(ctx, userID, input)
		}

		return nil, errors.Wrap(err, "failed to find seller for update")
	}

	seller.StoreName = input.StoreName
	seller.StoreDescription = input.StoreDescription
	seller.StoreAddress = input.StoreAddress
	seller.StoreCoordinates = input.StoreCoordinates
	seller.CustomGoogleMapLink = input.CustomGoogleMapLink

	if input.Image != nil {
		imageURL, err := srv.blobStore.Upload(ctx, input.Image.Content, input.Image.ContentType, "sellers")
		if err != nil {
			srv.logger.Error("Store image upload failed", "error", err, "userID", userID)

			return nil, domainerrors.ErrUploadFailed
		}
		seller.StoreImage = imageURL
	}

	if err := srv.sellerRepo.Update(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to update seller")
	}

	return seller, nil
}

// createOnUpdate handles the upsert path. Unlike a direct create, the image
// is optional here.
func (srv *sellerService) createOnUpdate(ctx context.Context, userID uuid.UUID, input *usecase.SellerInput) (*entity.Seller, error) {
	imageURL := ""
	if input.Image != nil {
		url, err := srv.blobStore.Upload(ctx, input.Image.Content, input.Image.ContentType, "sellers")
		if err != nil {
			srv.logger.Error("Store image upload failed", "error", err, "userID", userID)

			return nil, domainerrors.ErrUploadFailed
		}
		imageURL = url
	}

	seller := &entity.Seller{
		StoreName:           input.StoreName,
		StoreDescription:    input.StoreDescription,
		StoreAddress:        input.StoreAddress,
		StoreCoordinates:    input.StoreCoordinates,
		CustomGoogleMapLink: input.CustomGoogleMapLink,
		StoreImage:          imageURL,
		UserID:              userID,
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to create seller on update")
	}

	return seller, nil
}

// DeleteSeller removes the caller's storefront.
func (srv *sellerService) DeleteSeller(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sellerRepo.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return domainerrors.ErrSellerNotFound
		}

		return errors.Wrap(err, "failed to delete seller")
	}

	return nil
}
