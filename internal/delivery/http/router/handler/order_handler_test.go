package handler

import (
	"net/http"
	"testing"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/service"
	mocks "pasar/internal/mocks/usecase"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	customerID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		CreateOrder(mock.Anything, customerID, &usecase.CreateOrderInput{
			ProductIDs:  []uuid.UUID{productID},
			Quantities:  []int{2},
			TotalAmount: 300,
		}).
		Return(&usecase.CreateOrderOutput{
			Order: &entity.Order{
				ID:          uuid.New(),
				OrderNumber: "ORD-1700000000000",
				OrderStatus: entity.OrderStatusPending,
				TotalAmount: 300,
				CustomerID:  customerID,
			},
			ChargeResponse: &service.ChargeResult{PaymentURL: "https://pay.example.com/checkout"},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/order/create",
		`{"productIds":["`+productID.String()+`"],"quantities":[2],"totalAmount":300}`)
	c.Set("userID", customerID)

	err := h.CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order created and payment processed successfully")
	assert.Contains(t, rec.Body.String(), `"orderNumber":"ORD-1700000000000"`)
}

func TestOrderHandler_CreateOrder_MissingIdentity(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	c, rec := newJSONContext(http.MethodPost, "/api/order/create",
		`{"productIds":[],"quantities":[],"totalAmount":0}`)

	err := h.CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token data")
}

func TestOrderHandler_CreateOrder_UsecaseError(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	customerID := uuid.New()
	uc.EXPECT().
		CreateOrder(mock.Anything, customerID, mock.AnythingOfType("*usecase.CreateOrderInput")).
		Return(nil, domainerrors.ErrValidationFailed)

	c, _ := newJSONContext(http.MethodPost, "/api/order/create",
		`{"productIds":["`+uuid.NewString()+`"],"quantities":[1,2],"totalAmount":100}`)
	c.Set("userID", customerID)

	err := h.CreateOrder(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderHandler_GetSellerOrders_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		GetOrdersBySeller(mock.Anything, userID).
		Return([]*entity.Order{{ID: uuid.New(), OrderNumber: "ORD-1", OrderStatus: entity.OrderStatusPending}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/order/seller", "")
	c.Set("userID", userID)

	err := h.GetSellerOrders(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Orders retrieved successfully")
	assert.Contains(t, rec.Body.String(), `"orderNumber":"ORD-1"`)
}

func TestOrderHandler_GetCustomerOrders_Empty(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		GetOrdersByCustomer(mock.Anything, userID).
		Return(nil, domainerrors.ErrNoOrdersFound)

	c, _ := newJSONContext(http.MethodGet, "/api/order/customer", "")
	c.Set("userID", userID)

	err := h.GetCustomerOrders(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersFound)
}

func TestOrderHandler_CancelOrder_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	orderID := uuid.New()
	uc.EXPECT().
		CancelOrder(mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, OrderStatus: entity.OrderStatusCancelled}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/order/cancel", `{"id":"`+orderID.String()+`"}`)
	c.Set("userID", uuid.New())

	err := h.CancelOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order cancelled successfully")
	assert.Contains(t, rec.Body.String(), `"orderStatus":"Cancelled"`)
}

func TestOrderHandler_CancelOrder_MissingID(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, testHandlerLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/order/cancel", `{}`)
	c.Set("userID", uuid.New())

	err := h.CancelOrder(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
