// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in. Clients may send either
// the username or the email; whichever is present is matched.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ForgotPasswordInput starts the password reset flow.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes the password reset flow.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// UpdateAccountInput defines the partial account update. Empty fields are
// left untouched. Password carries the current password as sent by older
// clients; it is accepted but not verified, matching the historical contract.
type UpdateAccountInput struct {
	Username    string
	Email       string
	Password    string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AccountSummary is the non-sensitive slice of the account returned by
// account updates.
type AccountSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AuthUsecase defines the interface for identity operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	UpdateAccount(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*AccountSummary, error)
}
