package handler

import (
	"net/http"
	"testing"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	mocks "pasar/internal/mocks/usecase"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentHandler_CreatePayment_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		CreatePayment(mock.Anything, &usecase.CreatePaymentInput{
			UserID:        userID,
			ProductID:     productID,
			PaymentMethod: "promptpay",
			GrossAmount:   750,
		}).
		Return(&usecase.CreatePaymentOutput{
			Payment: &entity.Payment{
				ID:            uuid.New(),
				TransactionID: "txn-1700000000000",
				OrderRef:      "order-1700000000000",
				PaymentStatus: entity.PaymentStatusPending,
				PaymentMethod: "promptpay",
				GrossAmount:   750,
			},
			PaymentURL: "https://pay.example.com/checkout",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/payment/create",
		`{"userId":"`+userID.String()+`","productId":"`+productID.String()+`","paymentMethod":"promptpay","grossAmount":750}`)

	err := h.CreatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment created successfully")
	assert.Contains(t, rec.Body.String(), `"paymentUrl":"https://pay.example.com/checkout"`)
	assert.Contains(t, rec.Body.String(), `"paymentStatus":"pending"`)
}

func TestPaymentHandler_CreatePayment_BadBody(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	c, rec := newJSONContext(http.MethodPost, "/api/payment/create", `{"grossAmount":"not-a-number"}`)

	err := h.CreatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid payment input")
}

func TestPaymentHandler_CreatePayment_UsecaseError(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	uc.EXPECT().
		CreatePayment(mock.Anything, mock.AnythingOfType("*usecase.CreatePaymentInput")).
		Return(nil, errors.New("gateway unreachable"))

	c, rec := newJSONContext(http.MethodPost, "/api/payment/create",
		`{"userId":"`+uuid.NewString()+`","productId":"`+uuid.NewString()+`","paymentMethod":"card","grossAmount":100}`)

	err := h.CreatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create payment")
}

func TestPaymentHandler_CreatePayment_MissingFields(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	c, rec := newJSONContext(http.MethodPost, "/api/payment/create",
		`{"userId":"`+uuid.NewString()+`","productId":"`+uuid.NewString()+`","paymentMethod":"card","grossAmount":0}`)

	err := h.CreatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid payment input")
}

func TestPaymentHandler_UpdatePaymentStatus_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	uc.EXPECT().
		UpdatePaymentStatus(mock.Anything, &usecase.UpdatePaymentStatusInput{
			OrderRef:      "order-1700000000000",
			PaymentStatus: "settlement",
		}).
		Return(&entity.Payment{
			ID:            uuid.New(),
			OrderRef:      "order-1700000000000",
			PaymentStatus: "settlement",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/payment/update-status",
		`{"orderId":"order-1700000000000","paymentStatus":"settlement"}`)

	err := h.UpdatePaymentStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment status updated successfully")
	assert.Contains(t, rec.Body.String(), `"paymentStatus":"settlement"`)
}

func TestPaymentHandler_UpdatePaymentStatus_MissingOrderID(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	c, rec := newJSONContext(http.MethodPost, "/api/payment/update-status",
		`{"paymentStatus":"settlement"}`)

	err := h.UpdatePaymentStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid payment input")
}

func TestPaymentHandler_UpdatePaymentStatus_NotFound(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, testHandlerLogger())

	uc.EXPECT().
		UpdatePaymentStatus(mock.Anything, mock.AnythingOfType("*usecase.UpdatePaymentStatusInput")).
		Return(nil, domainerrors.ErrPaymentNotFound)

	c, rec := newJSONContext(http.MethodPost, "/api/payment/update-status",
		`{"orderId":"order-unknown","paymentStatus":"settlement"}`)

	err := h.UpdatePaymentStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment not found")
}
