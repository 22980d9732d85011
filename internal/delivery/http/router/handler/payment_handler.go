package handler

import (
	"log/slog"
	"net/http"

	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler serves the standalone payment endpoints. This endpoint
// family answers with "message"/"error" fields instead of "msg", so errors
// are mapped here instead of falling through to the shared error handler.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

type createPaymentRequest struct {
	UserID        uuid.UUID `json:"userId" validate:"required"`
	ProductID     uuid.UUID `json:"productId" validate:"required"`
	PaymentMethod string    `json:"paymentMethod" validate:"required"`
	GrossAmount   float64   `json:"grossAmount" validate:"required,gt=0"`
}

// CreatePayment inserts a payment and requests a charge from the gateway.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payment input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payment input"})
	}

	output, err := h.uc.CreatePayment(c.Request().Context(), &usecase.CreatePaymentInput{
		UserID:        req.UserID,
		ProductID:     req.ProductID,
		PaymentMethod: req.PaymentMethod,
		GrossAmount:   req.GrossAmount,
	})
	if err != nil {
		h.logger.Error("Create payment failed", "error", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create payment"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":    "Payment created successfully",
		"payment":    output.Payment,
		"paymentUrl": output.PaymentURL,
	})
}

type updatePaymentStatusRequest struct {
	OrderID       string `json:"orderId" validate:"required"`
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// UpdatePaymentStatus overwrites a payment's status by order reference.
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	var req updatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payment input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payment input"})
	}

	payment, err := h.uc.UpdatePaymentStatus(c.Request().Context(), &usecase.UpdatePaymentStatusInput{
		OrderRef:      req.OrderID,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Payment not found"})
		}
		h.logger.Error("Update payment status failed", "error", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update payment status"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Payment status updated successfully",
		"payment": payment,
	})
}
