package impl

import (
	"context"
	"strings"
	"testing"

	"pasar/config"
	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/domain/service"
	mockRepo "pasar/internal/mocks/repository"
	mockService "pasar/internal/mocks/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for the standalone
// payment path.
type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockService.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)

	service := NewPaymentService(paymentRepo, gateway, &config.Config{}, testLogger())

	return paymentServiceFixtures{
		service:     service,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(_ context.Context, payment *entity.Payment) {
			assert.True(t, strings.HasPrefix(payment.TransactionID, "txn-"))
			assert.True(t, strings.HasPrefix(payment.OrderRef, "order-"))
			assert.Equal(t, entity.PaymentStatusPending, payment.PaymentStatus)
			assert.Equal(t, "credit_card", payment.PaymentMethod)
			assert.Equal(t, 250.0, payment.GrossAmount)
			require.NotNil(t, payment.UserID)
			require.NotNil(t, payment.ProductID)
			assert.Equal(t, userID, *payment.UserID)
			assert.Equal(t, productID, *payment.ProductID)
		}).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("service.ChargeRequest")).
		Run(func(_ context.Context, req service.ChargeRequest) {
			assert.True(t, strings.HasPrefix(req.TransactionID, "order-"))
			assert.Equal(t, 250.0, req.Amount)
			assert.Equal(t, "credit_card", req.Method)
		}).
		Return(&service.ChargeResult{ChargeID: "chrg_1", Status: "pending", PaymentURL: "https://pay.example/1"}, nil)

	fx.paymentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(_ context.Context, payment *entity.Payment) {
			assert.Equal(t, "https://pay.example/1", payment.PaymentURL)
		}).
		Return(nil)

	output, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:        userID,
		ProductID:     productID,
		PaymentMethod: "credit_card",
		GrossAmount:   250.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/1", output.PaymentURL)
	assert.Equal(t, entity.PaymentStatusPending, output.Payment.PaymentStatus)
}

func TestPaymentService_CreatePayment_ChargeFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)
	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("service.ChargeRequest")).
		Return(nil, errors.New("gateway unavailable"))

	// The row stays as inserted: no Update call.
	_, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:        uuid.New(),
		ProductID:     uuid.New(),
		PaymentMethod: "credit_card",
		GrossAmount:   99.0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentInitFailed)
}

func TestPaymentService_UpdatePaymentStatus_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	paymentID := uuid.New()
	payment := &entity.Payment{ID: paymentID, OrderRef: "order-123", PaymentStatus: entity.PaymentStatusPending}

	fx.paymentRepo.EXPECT().FindByOrderRef(ctx, "order-123").Return(payment, nil)
	fx.paymentRepo.EXPECT().UpdateStatus(ctx, paymentID, "settlement").Return(nil)

	got, err := fx.service.UpdatePaymentStatus(ctx, &usecase.UpdatePaymentStatusInput{
		OrderRef:      "order-123",
		PaymentStatus: "settlement",
	})
	require.NoError(t, err)
	assert.Equal(t, "settlement", got.PaymentStatus)
}

func TestPaymentService_UpdatePaymentStatus_NotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.paymentRepo.EXPECT().
		FindByOrderRef(ctx, "order-missing").
		Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.UpdatePaymentStatus(ctx, &usecase.UpdatePaymentStatusInput{
		OrderRef:      "order-missing",
		PaymentStatus: "settlement",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}
