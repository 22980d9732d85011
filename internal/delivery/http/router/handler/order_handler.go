package handler

import (
	"log/slog"
	"net/http"

	"pasar/internal/delivery/http/response"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order/payment workflow handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type createOrderRequest struct {
	ProductIDs  []uuid.UUID `json:"productIds"`
	Quantities  []int       `json:"quantities"`
	TotalAmount float64     `json:"totalAmount"`
}

// CreateOrder places an order and initiates its payment.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		ProductIDs:  req.ProductIDs,
		Quantities:  req.Quantities,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Order created and payment processed successfully", map[string]any{
		"order":          output.Order,
		"chargeResponse": output.ChargeResponse,
	})
}

// GetSellerOrders lists the orders placed against the caller's storefront.
func (h *OrderHandler) GetSellerOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	orders, err := h.uc.GetOrdersBySeller(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Orders retrieved successfully", map[string]any{
		"orders": orders,
	})
}

// GetCustomerOrders lists the caller's own orders.
func (h *OrderHandler) GetCustomerOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	orders, err := h.uc.GetOrdersByCustomer(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Orders retrieved successfully", map[string]any{
		"orders": orders,
	})
}

type cancelOrderRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CancelOrder flips an order to Cancelled.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return invalidTokenData(c)
	}

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), req.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Order cancelled successfully", map[string]any{
		"order": order,
	})
}
