package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pasar/config"
	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/domain/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultChargeTimeout = 30 * time.Second

// The workflow charges through a hosted gateway flow rather than a stored
// card token.
const workflowPaymentMethod = "promptpay"

// orderService implements the OrderUsecase interface.
//
// CreateOrder issues every write as its own atomic unit. There is no shared
// transaction and no compensation; a failure mid-workflow leaves the order
// header and any already-written items persisted.
type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	sellerRepo    repository.SellerRepository
	paymentRepo   repository.PaymentRepository
	gateway       service.PaymentGateway
	logger        *slog.Logger
	chargeTimeout time.Duration
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	paymentRepo repository.PaymentRepository,
	gateway service.PaymentGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	chargeTimeout := defaultChargeTimeout
	if cfg.Omise != nil && cfg.Omise.ChargeTimeout > 0 {
		chargeTimeout = cfg.Omise.ChargeTimeout
	}

	return &orderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		sellerRepo:    sellerRepo,
		paymentRepo:   paymentRepo,
		gateway:       gateway,
		logger:        logger,
		chargeTimeout: chargeTimeout,
	}
}

// CreateOrder places an order and initiates its payment, strictly sequential.
//
// The seller is resolved from the caller's own identity. That conflates the
// customer with a seller and only works for callers who own a storefront; the
// behavior is inherited from the existing API and kept for compatibility.
func (srv *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if len(input.ProductIDs) == 0 || len(input.ProductIDs) != len(input.Quantities) {
		return nil, domainerrors.ErrValidationFailed
	}
	for _, quantity := range input.Quantities {
		if quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed
		}
	}

	seller, err := srv.sellerRepo.FindByUserID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve seller for order")
	}

	order := &entity.Order{
		OrderNumber: generateOrderNumber(),
		OrderStatus: entity.OrderStatusPending,
		TotalAmount: input.TotalAmount,
		CustomerID:  customerID,
		SellerKey:   seller.SellerKey,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	// Items are verified and written one by one. A missing product aborts the
	// whole call, leaving the header and prior items in place.
	for i, productID := range input.ProductIDs {
		if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ProductMissing(productID.String())
			}

			return nil, errors.Wrap(err, "failed to verify order product")
		}

		item := &entity.OrderItem{
			ProductID: productID,
			Quantity:  input.Quantities[i],
			OrderID:   order.ID,
		}
		if err := srv.orderRepo.CreateItem(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create order item")
		}
	}

	payment := &entity.Payment{
		TransactionID: generateTransactionID(),
		OrderID:       &order.ID,
		OrderRef:      order.ID.String(),
		PaymentStatus: entity.PaymentStatusPendingOrder,
		PaymentMethod: workflowPaymentMethod,
		PaymentAmount: input.TotalAmount,
	}
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	chargeCtx, cancel := context.WithTimeout(ctx, srv.chargeTimeout)
	defer cancel()

	chargeResp, err := srv.gateway.Charge(chargeCtx, service.ChargeRequest{
		TransactionID: payment.TransactionID,
		Amount:        input.TotalAmount,
		Method:        workflowPaymentMethod,
	})
	if err != nil {
		// The order stays Pending and the payment keeps its initial status.
		srv.logger.Error("Payment charge failed", "error", err, "orderID", order.ID)

		return nil, domainerrors.ErrPaymentInitFailed
	}

	if err := srv.paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusSuccess); err != nil {
		return nil, errors.Wrap(err, "failed to mark payment successful")
	}
	payment.PaymentStatus = entity.PaymentStatusSuccess

	return &usecase.CreateOrderOutput{
		Order:          order,
		ChargeResponse: chargeResp,
	}, nil
}

// GetOrdersBySeller lists orders placed against the caller's storefront.
func (srv *orderService) GetOrdersBySeller(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve seller for orders")
	}

	orders, err := srv.orderRepo.FindBySellerKey(ctx, seller.SellerKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller orders")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersFound
	}

	return orders, nil
}

// GetOrdersByCustomer lists the caller's own orders.
func (srv *orderService) GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer orders")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersFound
	}

	return orders, nil
}

// CancelOrder flips the order to Cancelled unconditionally. There is no check
// on the current status and no cascade to the payment.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for cancel")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}
	order.OrderStatus = entity.OrderStatusCancelled

	return order, nil
}

// generateOrderNumber builds a timestamp-keyed order number with a random
// suffix so two calls in the same millisecond cannot collide.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// generateTransactionID builds the workflow transaction id the same way.
func generateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
