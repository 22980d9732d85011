package repository

import (
	"context"
	"errors"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment record does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
// Both the order workflow and the standalone payment path write through here.
type PaymentRepository interface {
	// FindByOrderRef retrieves a payment by its wire-level order reference.
	FindByOrderRef(ctx context.Context, orderRef string) (*entity.Payment, error)

	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update overwrites mutable fields (status, payment URL) of an existing record.
	Update(ctx context.Context, payment *entity.Payment) error

	// UpdateStatus overwrites only the payment status by record id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
