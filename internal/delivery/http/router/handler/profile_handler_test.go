package handler

import (
	"net/http"
	"testing"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	mocks "pasar/internal/mocks/usecase"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileHandler_GetProfile_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID, FullName: "Alice Tan"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/profile", "")
	c.Set("userID", userID)

	err := h.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile retrieved successfully")
	assert.Contains(t, rec.Body.String(), `"fullName":"Alice Tan"`)
}

func TestProfileHandler_UpdateProfile_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{
			FullName:    "Alice Tan",
			PhoneNumber: "0812345678",
			Address:     "Jl. Merdeka 1",
		}).
		Return(&entity.Profile{UserID: userID, FullName: "Alice Tan", PhoneNumber: "0812345678", Address: "Jl. Merdeka 1"}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/profile",
		`{"fullName":"Alice Tan","phoneNumber":"0812345678","address":"Jl. Merdeka 1"}`)
	c.Set("userID", userID)

	err := h.UpdateProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated successfully")
}

func TestProfileHandler_UploadProfilePicture_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		UploadProfilePicture(mock.Anything, userID, mock.AnythingOfType("*usecase.FileUpload")).
		Return(&entity.Profile{UserID: userID, ProfilePicture: "https://storage.example.com/profiles/alice.png"}, nil)

	c, rec := newMultipartContext(t, "/api/profile/picture", nil, "profilePicture", "alice.png")
	c.Set("userID", userID)

	err := h.UploadProfilePicture(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile picture uploaded successfully")
	assert.Contains(t, rec.Body.String(), `"profilePicture":"https://storage.example.com/profiles/alice.png"`)
}

func TestProfileHandler_UploadProfilePicture_NoFile(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, testHandlerLogger())

	c, _ := newMultipartContext(t, "/api/profile/picture", map[string]string{"unrelated": "field"}, "", "")
	c.Set("userID", uuid.New())

	err := h.UploadProfilePicture(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
}

func TestProfileHandler_DeleteProfilePicture_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		DeleteProfilePicture(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID, ProfilePicture: ""}, nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/profile/picture", "")
	c.Set("userID", userID)

	err := h.DeleteProfilePicture(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile picture deleted successfully")
	assert.Contains(t, rec.Body.String(), `"profilePicture":""`)
}
