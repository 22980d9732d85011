package repository

import (
	"context"
	"errors"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile record yet.
// Callers treat this as "empty profile", not as a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// Profiles are keyed 1-1 by user id and created lazily on first write.
type ProfileRepository interface {
	// FindByUserID retrieves the profile for the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
