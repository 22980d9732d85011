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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	sellerRepo  *mockRepo.MockSellerRepository
	blobStore   *mockService.MockBlobStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	blobStore := mockService.NewMockBlobStore(t)

	service := NewProductService(productRepo, sellerRepo, blobStore, testLogger())

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		blobStore:   blobStore,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.blobStore.EXPECT().
		Upload(ctx, mock.Anything, "image/png", "products").
		Return("https://storage.googleapis.com/bucket/products/img.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "Nasi Goreng", product.ProductName)
			assert.Equal(t, "Seller-abc", product.SellerKey)
			assert.Equal(t, 25000.0, product.ProductPrice)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, userID, &usecase.CreateProductInput{
		ProductName:  "Nasi Goreng",
		Category:     "food",
		ProductPrice: 25000,
		Image:        testUpload("dish.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Seller-abc", product.SellerKey)
}

func TestProductService_CreateProduct_NoFile(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	_, err := fx.service.CreateProduct(ctx, uuid.New(), &usecase.CreateProductInput{ProductName: "Nasi Goreng"})
	assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
}

func TestProductService_GetProducts_Empty(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.productRepo.EXPECT().FindBySellerKey(ctx, "Seller-abc").Return([]*entity.Product{}, nil)

	_, err := fx.service.GetProducts(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoProductsFound)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, userID, &usecase.UpdateProductInput{ID: productID, ProductName: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_KeepsImageWithoutFile(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}
	existing := &entity.Product{
		ID:           productID,
		ProductName:  "Old",
		ProductImage: "https://storage.googleapis.com/bucket/products/old.png",
		SellerKey:    "Seller-abc",
	}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "New", product.ProductName)
			assert.Equal(t, "https://storage.googleapis.com/bucket/products/old.png", product.ProductImage)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, userID, &usecase.UpdateProductInput{
		ID:           productID,
		ProductName:  "New",
		Category:     "food",
		ProductPrice: 30000,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", product.ProductName)
}

// Deleting a product owned by another storefront is rejected and the row is
// left alone.
func TestProductService_DeleteProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}
	foreign := &entity.Product{ID: productID, SellerKey: "Seller-xyz"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(foreign, nil)
	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)

	err := fx.service.DeleteProduct(ctx, userID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}
	owned := &entity.Product{ID: productID, SellerKey: "Seller-abc"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(owned, nil)
	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	err := fx.service.DeleteProduct(ctx, userID, productID)
	require.NoError(t, err)
}
