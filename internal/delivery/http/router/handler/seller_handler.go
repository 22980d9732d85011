package handler

import (
	"log/slog"
	"net/http"

	"pasar/internal/delivery/http/response"
	"pasar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for storefront handlers. All routes are
// keyed by the authenticated user; the image travels as multipart field
// "storeImage".
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{uc: uc, logger: logger}
}

func sellerInputFromForm(c echo.Context) (*usecase.SellerInput, func(), error) {
	upload, closer, err := formFile(c, "storeImage")
	if err != nil {
		return nil, nil, err
	}

	input := &usecase.SellerInput{
		StoreName:           c.FormValue("storeName"),
		StoreDescription:    c.FormValue("storeDescription"),
		StoreAddress:        c.FormValue("storeAddress"),
		StoreCoordinates:    c.FormValue("storeCoordinates"),
		CustomGoogleMapLink: c.FormValue("customGoogleMapLink"),
		Image:               upload,
	}

	cleanup := func() {
		if closer != nil {
			closer.Close()
		}
	}

	return input, cleanup, nil
}

// CreateSeller creates the caller's storefront. The image is required.
func (h *SellerHandler) CreateSeller(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	input, cleanup, err := sellerInputFromForm(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer cleanup()

	seller, err := h.uc.CreateSeller(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusCreated, "Seller created successfully", map[string]any{
		"seller": seller,
	})
}

// GetSeller returns the caller's storefront.
func (h *SellerHandler) GetSeller(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Seller retrieved successfully", map[string]any{
		"seller": seller,
	})
}

// UpdateSeller updates the storefront, creating it when absent.
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	input, cleanup, err := sellerInputFromForm(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer cleanup()

	seller, err := h.uc.UpdateSeller(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Seller updated successfully", map[string]any{
		"seller": seller,
	})
}

// DeleteSeller removes the caller's storefront.
func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	if err := h.uc.DeleteSeller(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Seller deleted successfully")
}
