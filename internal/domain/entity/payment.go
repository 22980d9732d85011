package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values. The update-status endpoint accepts free-form values
// from the gateway callback, so these constants cover only the transitions
// this service writes itself.
// The two creation flows historically disagree on the capitalization of the
// initial status; both spellings are preserved on the wire.
const (
	PaymentStatusPending      = "pending" // standalone flow
	PaymentStatusPendingOrder = "Pending" // order workflow
	PaymentStatusSuccess      = "Success"
	PaymentStatusFailed       = "Failed"
)

// Payment is a charge record. Two code paths create payments and share this
// table without being reconciled: the order workflow links rows to an order
// via OrderID, while the standalone /api/payment path fills UserID/ProductID
// and a synthetic OrderRef instead.
//
// OrderRef is what goes on the wire as "orderId": for workflow rows it is the
// order's id rendered as a string, for standalone rows it is the generated
// "order-<ms>" reference.
type Payment struct {
	ID            uuid.UUID  `json:"id"`
	TransactionID string     `json:"transactionId"`
	OrderID       *uuid.UUID `json:"-"`
	OrderRef      string     `json:"orderId"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentAmount float64    `json:"paymentAmount,omitempty"` // Order-workflow amount.
	GrossAmount   float64    `json:"grossAmount,omitempty"`   // Standalone-flow amount.
	PaymentURL    string     `json:"paymentUrl,omitempty"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	ProductID     *uuid.UUID `json:"productId,omitempty"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}
