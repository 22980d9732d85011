package handler

import (
	"context"
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

func TestSellerHandler_CreateSeller_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, testHandlerLogger())

	userID := uuid.New()
	sellerID := uuid.New()
	uc.EXPECT().
		CreateSeller(mock.Anything, userID, mock.AnythingOfType("*usecase.SellerInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.SellerInput) {
			assert.Equal(t, "Warung Alice", input.StoreName)
			assert.Equal(t, "Home cooking", input.StoreDescription)
			assert.NotNil(t, input.Image)
			assert.Equal(t, "store.png", input.Image.Filename)
		}).
		Return(&entity.Seller{
			ID:        sellerID,
			SellerKey: entity.DeriveSellerKey(sellerID),
			StoreName: "Warung Alice",
			UserID:    userID,
		}, nil)

	c, rec := newMultipartContext(t, "/api/seller", map[string]string{
		"storeName":        "Warung Alice",
		"storeDescription": "Home cooking",
		"storeAddress":     "Jl. Merdeka 1",
	}, "storeImage", "store.png")
	c.Set("userID", userID)

	err := h.CreateSeller(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seller created successfully")
	assert.Contains(t, rec.Body.String(), `"storeName":"Warung Alice"`)
}

func TestSellerHandler_CreateSeller_NoFile(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		CreateSeller(mock.Anything, userID, mock.AnythingOfType("*usecase.SellerInput")).
		Return(nil, domainerrors.ErrNoFileUploaded)

	c, _ := newMultipartContext(t, "/api/seller", map[string]string{
		"storeName": "Warung Alice",
	}, "", "")
	c.Set("userID", userID)

	err := h.CreateSeller(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
}

func TestSellerHandler_GetSeller_NotFound(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		GetSeller(mock.Anything, userID).
		Return(nil, domainerrors.ErrSellerNotFound)

	c, _ := newJSONContext(http.MethodGet, "/api/seller", "")
	c.Set("userID", userID)

	err := h.GetSeller(c)

	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestSellerHandler_UpdateSeller_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		UpdateSeller(mock.Anything, userID, mock.AnythingOfType("*usecase.SellerInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.SellerInput) {
			assert.Nil(t, input.Image)
		}).
		Return(&entity.Seller{ID: uuid.New(), StoreName: "Warung Alice 2", UserID: userID}, nil)

	c, rec := newMultipartContext(t, "/api/seller", map[string]string{
		"storeName": "Warung Alice 2",
	}, "", "")
	c.Set("userID", userID)

	err := h.UpdateSeller(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seller updated successfully")
}

func TestSellerHandler_DeleteSeller_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockSellerUsecase(t)
	h := NewSellerHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		DeleteSeller(mock.Anything, userID).
		Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/seller", "")
	c.Set("userID", userID)

	err := h.DeleteSeller(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seller deleted successfully")
}
