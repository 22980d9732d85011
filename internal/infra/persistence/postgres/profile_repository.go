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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the profile for the given user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"full_name":       profile.FullName,
			"phone_number":    profile.PhoneNumber,
			"address":         profile.Address,
			"profile_picture": profile.ProfilePicture,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toProfileDomain converts a persistence model to a domain entity.
func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:         profileM.UserID,
		FullName:       profileM.FullName,
		PhoneNumber:    profileM.PhoneNumber,
		Address:        profileM.Address,
		ProfilePicture: profileM.ProfilePicture,
		CreatedAt:      profileM.CreatedAt,
		UpdatedAt:      profileM.UpdatedAt,
	}
}

// fromProfileDomain converts a domain entity to a persistence model.
func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:         profile.UserID,
		FullName:       profile.FullName,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		ProfilePicture: profile.ProfilePicture,
	}
}
