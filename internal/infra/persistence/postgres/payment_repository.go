package postgres

import (
	"context"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByOrderRef retrieves a payment by its wire-level order reference.
func (repo *paymentRepository) FindByOrderRef(ctx context.Context, orderRef string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("order_ref = ?", orderRef).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order reference")
	}

	return toPaymentDomain(&paymentM), nil
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of an existing record.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"payment_status": payment.PaymentStatus,
			"payment_url":    payment.PaymentURL,
			"transaction_id": payment.TransactionID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// UpdateStatus overwrites only the payment status.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Update("payment_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// toPaymentDomain converts a persistence model to a domain entity.
func toPaymentDomain(paymentM *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            paymentM.ID,
		TransactionID: paymentM.TransactionID,
		OrderID:       paymentM.OrderID,
		OrderRef:      paymentM.OrderRef,
		PaymentStatus: paymentM.PaymentStatus,
		PaymentMethod: paymentM.PaymentMethod,
		PaymentAmount: paymentM.PaymentAmount,
		GrossAmount:   paymentM.GrossAmount,
		PaymentURL:    paymentM.PaymentURL,
		UserID:        paymentM.UserID,
		ProductID:     paymentM.ProductID,
		CreatedAt:     paymentM.CreatedAt,
		UpdatedAt:     paymentM.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain entity to a persistence model.
func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		OrderID:       payment.OrderID,
		OrderRef:      payment.OrderRef,
		PaymentStatus: payment.PaymentStatus,
		PaymentMethod: payment.PaymentMethod,
		PaymentAmount: payment.PaymentAmount,
		GrossAmount:   payment.GrossAmount,
		PaymentURL:    payment.PaymentURL,
		UserID:        payment.UserID,
		ProductID:     payment.ProductID,
	}
}
