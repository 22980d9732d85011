package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pasar/internal/delivery/http/response"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers. Create and update
// take multipart forms with the image under "productImage"; update and delete
// address the product by its body-level id.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, domainerrors.ErrValidationFailed
	}

	return price, nil
}

// CreateProduct adds a catalog item to the caller's storefront.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	price, err := parsePrice(c.FormValue("productPrice"))
	if err != nil {
		return err
	}

	upload, closer, err := formFile(c, "productImage")
	if err != nil {
		return errors.WithStack(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, &usecase.CreateProductInput{
		ProductName:  c.FormValue("productName"),
		Category:     c.FormValue("category"),
		ProductPrice: price,
		Image:        upload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusCreated, "Product created successfully", map[string]any{
		"product": product,
	})
}

// GetProducts lists the caller's catalog.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	products, err := h.uc.GetProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Products retrieved successfully", map[string]any{
		"products": products,
	})
}

// UpdateProduct modifies a catalog item addressed by the form-level id. A
// new image is optional.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	productID, err := uuid.Parse(c.FormValue("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed
	}

	price, err := parsePrice(c.FormValue("productPrice"))
	if err != nil {
		return err
	}

	upload, closer, err := formFile(c, "productImage")
	if err != nil {
		return errors.WithStack(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, &usecase.UpdateProductInput{
		ID:           productID,
		ProductName:  c.FormValue("productName"),
		Category:     c.FormValue("category"),
		ProductPrice: price,
		Image:        upload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Product updated successfully", map[string]any{
		"product": product,
	})
}

type deleteProductRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// DeleteProduct removes a catalog item addressed by the body-level id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	var req deleteProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, req.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Product deleted successfully")
}
