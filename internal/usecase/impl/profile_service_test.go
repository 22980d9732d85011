package impl

import (
	"context"
	"testing"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	mockRepo "pasar/internal/mocks/repository"
	mockService "pasar/internal/mocks/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	blobStore   *mockService.MockBlobStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	blobStore := mockService.NewMockBlobStore(t)

	service := NewProfileService(profileRepo, blobStore, testLogger())

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		blobStore:   blobStore,
	}
}

// An absent profile reads back as an empty one, not as an error.
func TestProfileService_GetProfile_AbsentIsEmpty(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Empty(t, profile.FullName)
	assert.Empty(t, profile.ProfilePicture)
}

func TestProfileService_UpdateProfile_CreatesOnFirstWrite(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "Alice", profile.FullName)
		}).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{FullName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FullName)
}

func TestProfileService_UpdateProfile_KeepsPicture(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{
		UserID:         userID,
		FullName:       "Alice",
		ProfilePicture: "https://storage.googleapis.com/bucket/profiles/pic.png",
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, "Alice B", profile.FullName)
			assert.Equal(t, "https://storage.googleapis.com/bucket/profiles/pic.png", profile.ProfilePicture)
		}).
		Return(nil)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{FullName: "Alice B"})
	require.NoError(t, err)
}

func TestProfileService_UploadProfilePicture_UpsertsURL(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{UserID: userID, FullName: "Alice"}

	fx.blobStore.EXPECT().
		Upload(ctx, mock.Anything, "image/png", "profiles").
		Return("https://storage.googleapis.com/bucket/profiles/new.png", nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, "https://storage.googleapis.com/bucket/profiles/new.png", profile.ProfilePicture)
		}).
		Return(nil)

	profile, err := fx.service.UploadProfilePicture(ctx, userID, testUpload("pic.png"))
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/bucket/profiles/new.png", profile.ProfilePicture)
}

// Deleting the picture removes the blob and blanks the URL to an empty
// string, never null.
func TestProfileService_DeleteProfilePicture_BlanksURL(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{
		UserID:         userID,
		ProfilePicture: "https://storage.googleapis.com/bucket/profiles/pic.png",
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.blobStore.EXPECT().
		Remove(ctx, "https://storage.googleapis.com/bucket/profiles/pic.png").
		Return(nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, "", profile.ProfilePicture)
		}).
		Return(nil)

	profile, err := fx.service.DeleteProfilePicture(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "", profile.ProfilePicture)
}

func TestProfileService_DeleteProfilePicture_NoneSet(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	_, err := fx.service.DeleteProfilePicture(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoProfilePicture)
}

func TestProfileService_DeleteProfilePicture_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.DeleteProfilePicture(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoProfilePicture)
}
