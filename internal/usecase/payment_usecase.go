package usecase

import (
	"context"

	"pasar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput carries the standalone payment request. This path
// bypasses the order workflow entirely and references a user and product
// directly.
type CreatePaymentInput struct {
	UserID        uuid.UUID
	ProductID     uuid.UUID
	PaymentMethod string
	GrossAmount   float64
}

// CreatePaymentOutput returns the created record and the gateway's hosted
// payment URL.
type CreatePaymentOutput struct {
	Payment    *entity.Payment
	PaymentURL string
}

// UpdatePaymentStatusInput overwrites a payment's status, looked up by its
// wire-level order reference. The status value is free-form: gateway
// callbacks write whatever they report.
type UpdatePaymentStatusInput struct {
	OrderRef      string
	PaymentStatus string
}

// PaymentUsecase defines the interface for the standalone payment path. It is
// parallel to the order workflow's payment handling and intentionally not
// reconciled with it; both write the same table.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error)
	UpdatePaymentStatus(ctx context.Context, input *UpdatePaymentStatusInput) (*entity.Payment, error)
}
