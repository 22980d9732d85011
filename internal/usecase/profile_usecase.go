package usecase

import (
	"context"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput upserts the contact-card fields.
type UpdateProfileInput struct {
	FullName    string
	PhoneNumber string
	Address     string
}

// ProfileUsecase defines the interface for contact-card operations. Profiles
// are created lazily: reads of an absent profile return an empty one, writes
// create the record on first use.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, file *FileUpload) (*entity.Profile, error)

	// DeleteProfilePicture removes the stored blob and blanks the URL. The
	// URL becomes an empty string, never null on the wire.
	DeleteProfilePicture(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
