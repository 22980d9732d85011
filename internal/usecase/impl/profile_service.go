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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	blobStore   service.BlobStore
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		blobStore:   blobStore,
		logger:      logger,
	}
}

// GetProfile retrieves the contact card. An absent record answers as an empty
// profile, never as an error.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &entity.Profile{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile upserts the contact-card fields, creating the record on first
// write. The stored picture URL is untouched.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find profile for update")
		}

		profile = &entity.Profile{
			UserID:      userID,
			FullName:    input.FullName,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
		}
		if err := srv.profileRepo.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create profile")
		}

		return profile, nil
	}

	profile.FullName = input.FullName
	profile.PhoneNumber = input.PhoneNumber
	profile.Address = input.Address

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// UploadProfilePicture stores the blob, then upserts the picture URL.
func (srv *profileService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.Profile, error) {
	if file == nil {
		return nil, domainerrors.ErrNoFileUploaded
	}

	url, err := srv.blobStore.Upload(ctx, file.Content, file.ContentType, "profiles")
	if err != nil {
		srv.logger.Error("Profile picture upload failed", "error", err, "userID", userID)

		return nil, domainerrors.ErrUploadFailed
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find profile for picture upload")
		}

		profile = &entity.Profile{UserID: userID, ProfilePicture: url}
		if err := srv.profileRepo.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create profile for picture upload")
		}

		return profile, nil
	}

	profile.ProfilePicture = url
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile picture")
	}

	return profile, nil
}

// DeleteProfilePicture removes the stored blob and blanks the URL. The URL
// becomes an empty string, never null.
func (srv *profileService) DeleteProfilePicture(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNoProfilePicture
		}

		return nil, errors.Wrap(err, "failed to find profile for picture delete")
	}

	if profile.ProfilePicture == "" {
		return nil, domainerrors.ErrNoProfilePicture
	}

	if err := srv.blobStore.Remove(ctx, profile.ProfilePicture); err != nil {
		srv.logger.Error("Profile picture blob delete failed", "error", err, "userID", userID)

		return nil, domainerrors.ErrInternalError
	}

	profile.ProfilePicture = ""
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to blank profile picture")
	}

	return profile, nil
}
