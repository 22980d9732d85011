package service

import "context"

// Mailer abstracts outbound email. Send failures are reported to the caller,
// never retried.
type Mailer interface {
	// SendPasswordReset delivers the reset link to the account's address.
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
