package service

import "context"

// ChargeRequest describes a single charge attempt against the gateway.
// Amount is in the store currency's major unit; the infra implementation owns
// the conversion to whatever unit the gateway bills in.
type ChargeRequest struct {
	TransactionID string
	Amount        float64
	Method        string
}

// ChargeResult is the gateway's answer to a charge attempt.
type ChargeResult struct {
	ChargeID   string `json:"charge_id"`
	Status     string `json:"status"`
	Paid       bool   `json:"paid"`
	PaymentURL string `json:"payment_url,omitempty"` // Hosted payment page, when the gateway issues one.
}

// PaymentGateway abstracts the third-party charge service. One call, no
// retries; a failed charge is reported to the caller as-is.
type PaymentGateway interface {
	// Charge executes a charge. Callers bound the call with a context
	// deadline; the gateway itself imposes none.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
