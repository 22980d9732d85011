package impl

import (
	"context"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	sellerRepo  *mockRepo.MockSellerRepository
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockService.MockPaymentGateway
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)

	service := NewOrderService(orderRepo, productRepo, sellerRepo, paymentRepo, gateway, &config.Config{}, testLogger())

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: customerID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, customerID).Return(seller, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)
			assert.Equal(t, customerID, order.CustomerID)
			assert.Equal(t, "Seller-abc", order.SellerKey)
			assert.Contains(t, order.OrderNumber, "ORD-")
			order.ID = orderID
		}).
		Return(nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerKey: "Seller-abc"}, nil)

	fx.orderRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Run(func(_ context.Context, item *entity.OrderItem) {
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 2, item.Quantity)
			assert.Equal(t, orderID, item.OrderID)
		}).
		Return(nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(_ context.Context, payment *entity.Payment) {
			assert.Equal(t, entity.PaymentStatusPendingOrder, payment.PaymentStatus)
			assert.Equal(t, orderID.String(), payment.OrderRef)
			assert.Equal(t, 120.0, payment.PaymentAmount)
			payment.ID = paymentID
		}).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("service.ChargeRequest")).
		Return(&service.ChargeResult{ChargeID: "chrg_1", Status: "pending", PaymentURL: "https://pay.example/1"}, nil)

	fx.paymentRepo.EXPECT().
		UpdateStatus(ctx, paymentID, entity.PaymentStatusSuccess).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{productID},
		Quantities:  []int{2},
		TotalAmount: 120.0,
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, output.Order.ID)
	assert.Equal(t, "chrg_1", output.ChargeResponse.ChargeID)
}

func TestOrderService_CreateOrder_MismatchedLists(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{uuid.New(), uuid.New()},
		Quantities:  []int{1},
		TotalAmount: 50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_EmptyLists(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{TotalAmount: 50})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{uuid.New(), uuid.New()},
		Quantities:  []int{1, 0},
		TotalAmount: 50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{uuid.New()},
		Quantities:  []int{-3},
		TotalAmount: 50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_NoSeller(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.sellerRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(nil, repository.ErrSellerNotFound)

	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{uuid.New()},
		Quantities:  []int{1},
		TotalAmount: 10,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

// A missing product halfway through aborts the call but leaves the order
// header and the already-written item behind: no deletes, no payment.
func TestOrderService_CreateOrder_MissingProductLeavesPartialState(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	firstID := uuid.New()
	missingID := uuid.New()
	orderID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: customerID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, customerID).Return(seller, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, firstID).
		Return(&entity.Product{ID: firstID}, nil)
	fx.orderRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil).Once()
	fx.productRepo.EXPECT().
		FindByID(ctx, missingID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{firstID, missingID},
		Quantities:  []int{1, 1},
		TotalAmount: 30,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), missingID.String())
}

func TestOrderService_CreateOrder_ChargeFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: customerID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, customerID).Return(seller, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.orderRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil)
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)
	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("service.ChargeRequest")).
		Return(nil, errors.New("gateway unavailable"))

	// The payment keeps its initial status: no UpdateStatus call.
	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{
		ProductIDs:  []uuid.UUID{productID},
		Quantities:  []int{1},
		TotalAmount: 10,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentInitFailed)
}

func TestOrderService_GetOrdersBySeller_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}
	orders := []*entity.Order{{ID: uuid.New(), SellerKey: "Seller-abc"}}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.orderRepo.EXPECT().FindBySellerKey(ctx, "Seller-abc").Return(orders, nil)

	got, err := fx.service.GetOrdersBySeller(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderService_GetOrdersBySeller_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), SellerKey: "Seller-abc", UserID: userID}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.orderRepo.EXPECT().FindBySellerKey(ctx, "Seller-abc").Return([]*entity.Order{}, nil)

	_, err := fx.service.GetOrdersBySeller(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersFound)
}

func TestOrderService_GetOrdersByCustomer_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.orderRepo.EXPECT().FindByCustomerID(ctx, customerID).Return(nil, nil)

	_, err := fx.service.GetOrdersByCustomer(ctx, customerID)
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersFound)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).Return(nil)

	got, err := fx.service.CancelOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.OrderStatus)
}

// Cancelling an already-cancelled order flips the status again and succeeds.
func TestOrderService_CancelOrder_Idempotent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusCancelled}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).Return(nil)

	got, err := fx.service.CancelOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.OrderStatus)
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.CancelOrder(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
