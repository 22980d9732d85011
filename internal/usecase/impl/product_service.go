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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	blobStore   service.BlobStore
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		blobStore:   blobStore,
		logger:      logger,
	}
}

// CreateProduct adds a catalog item under the caller's storefront. The image
// upload completes before the record is written.
func (srv *productService) CreateProduct(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Image == nil {
		return nil, domainerrors.ErrNoFileUploaded
	}

	seller, err := srv.resolveSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	imageURL, err := srv.blobStore.Upload(ctx, input.Image.Content, input.Image.ContentType, "products")
	if err != nil {
		srv.logger.Error("Product image upload failed", "error", err, "userID", userID)

		return nil, domainerrors.ErrUploadFailed
	}

	product := &entity.Product{
		ProductName:  input.ProductName,
		Category:     input.Category,
		ProductPrice: input.ProductPrice,
		ProductImage: imageURL,
		SellerKey:    seller.SellerKey,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProducts lists the caller's catalog. An empty catalog answers not found,
// a boundary older clients rely on.
func (srv *productService) GetProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	seller, err := srv.resolveSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindBySellerKey(ctx, seller.SellerKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	if len(products) == 0 {
		return nil, domainerrors.ErrNoProductsFound
	}

	return products, nil
}

// UpdateProduct modifies an existing catalog item, keeping the stored image
// when no new file is present.
func (srv *productService) UpdateProduct(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	seller, err := srv.resolveSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for update")
	}

	product.ProductName = input.ProductName
	product.Category = input.Category
	product.ProductPrice = input.ProductPrice
	product.SellerKey = seller.SellerKey

	if input.Image != nil {
		imageURL, err := srv.blobStore.Upload(ctx, input.Image.Content, input.Image.ContentType, "products")
		if err != nil {
			srv.logger.Error("Product image upload failed", "error", err, "userID", userID)

			return nil, domainerrors.ErrUploadFailed
		}
		product.ProductImage = imageURL
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog item after checking the caller's seller key
// against the product's stored owner key.
func (srv *productService) DeleteProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product for delete")
	}

	seller, err := srv.resolveSeller(ctx, userID)
	if err != nil {
		return err
	}

	if product.SellerKey != seller.SellerKey {
		return domainerrors.ErrNotProductOwner
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *productService) resolveSeller(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve seller")
	}

	return seller, nil
}
