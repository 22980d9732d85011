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

	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface, the standalone
// payment path that bypasses the order workflow.
type paymentService struct {
	paymentRepo   repository.PaymentRepository
	gateway       service.PaymentGateway
	logger        *slog.Logger
	chargeTimeout time.Duration
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	gateway service.PaymentGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	chargeTimeout := defaultChargeTimeout
	if cfg.Omise != nil && cfg.Omise.ChargeTimeout > 0 {
		chargeTimeout = cfg.Omise.ChargeTimeout
	}

	return &paymentService{
		paymentRepo:   paymentRepo,
		gateway:       gateway,
		logger:        logger,
		chargeTimeout: chargeTimeout,
	}
}

// CreatePayment inserts the record first, then requests the charge and writes
// the gateway's payment URL back onto the row.
func (srv *paymentService) CreatePayment(ctx context.Context, input *usecase.CreatePaymentInput) (*usecase.CreatePaymentOutput, error) {
	now := time.Now().UnixMilli()
	payment := &entity.Payment{
		TransactionID: fmt.Sprintf("txn-%d", now),
		OrderRef:      fmt.Sprintf("order-%d", now),
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		GrossAmount:   input.GrossAmount,
		UserID:        &input.UserID,
		ProductID:     &input.ProductID,
	}

	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	chargeCtx, cancel := context.WithTimeout(ctx, srv.chargeTimeout)
	defer cancel()

	chargeResp, err := srv.gateway.Charge(chargeCtx, service.ChargeRequest{
		TransactionID: payment.OrderRef,
		Amount:        input.GrossAmount,
		Method:        input.PaymentMethod,
	})
	if err != nil {
		srv.logger.Error("Standalone payment charge failed", "error", err, "orderRef", payment.OrderRef)

		return nil, domainerrors.ErrPaymentInitFailed
	}

	payment.PaymentURL = chargeResp.PaymentURL
	if err := srv.paymentRepo.Update(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to store payment url")
	}

	return &usecase.CreatePaymentOutput{
		Payment:    payment,
		PaymentURL: chargeResp.PaymentURL,
	}, nil
}

// UpdatePaymentStatus overwrites a payment's status by order reference. The
// value is written as received.
func (srv *paymentService) UpdatePaymentStatus(ctx context.Context, input *usecase.UpdatePaymentStatusInput) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByOrderRef(ctx, input.OrderRef)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for status update")
	}

	if err := srv.paymentRepo.UpdateStatus(ctx, payment.ID, input.PaymentStatus); err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}
	payment.PaymentStatus = input.PaymentStatus

	return payment, nil
}
