package postgres

import (
	"context"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the repository.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// FindByUserID retrieves the storefront owned by the given user.
func (repo *sellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by user ID")
	}

	return toSellerDomain(&sellerM), nil
}

// Create persists a new storefront. The legacy display key is derived from
// the generated id after the insert.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	if sellerM.SellerKey == "" {
		// Generate the id here so the key can be written in the same insert.
		sellerM.ID = uuid.New()
		sellerM.SellerKey = entity.DeriveSellerKey(sellerM.ID)
	}

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSellerExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.SellerKey = sellerM.SellerKey
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update modifies an existing storefront.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Updates(map[string]any{
			"store_name":             seller.StoreName,
			"store_description":      seller.StoreDescription,
			"store_address":          seller.StoreAddress,
			"store_coordinates":      seller.StoreCoordinates,
			"custom_google_map_link": seller.CustomGoogleMapLink,
			"store_image":            seller.StoreImage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// DeleteByUserID removes the storefront owned by the given user.
func (repo *sellerRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SellerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// toSellerDomain converts a persistence model to a domain entity.
func toSellerDomain(sellerM *model.SellerModel) *entity.Seller {
	return &entity.Seller{
		ID:                  sellerM.ID,
		SellerKey:           sellerM.SellerKey,
		StoreName:           sellerM.StoreName,
		StoreDescription:    sellerM.StoreDescription,
		StoreAddress:        sellerM.StoreAddress,
		StoreCoordinates:    sellerM.StoreCoordinates,
		CustomGoogleMapLink: sellerM.CustomGoogleMapLink,
		StoreImage:          sellerM.StoreImage,
		UserID:              sellerM.UserID,
		CreatedAt:           sellerM.CreatedAt,
		UpdatedAt:           sellerM.UpdatedAt,
	}
}

// fromSellerDomain converts a domain entity to a persistence model.
func fromSellerDomain(seller *entity.Seller) *model.SellerModel {
	return &model.SellerModel{
		ID:                  seller.ID,
		SellerKey:           seller.SellerKey,
		StoreName:           seller.StoreName,
		StoreDescription:    seller.StoreDescription,
		StoreAddress:        seller.StoreAddress,
		StoreCoordinates:    seller.StoreCoordinates,
		CustomGoogleMapLink: seller.CustomGoogleMapLink,
		StoreImage:          seller.StoreImage,
		UserID:              seller.UserID,
	}
}
