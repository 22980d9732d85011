package service

import (
	"github.com/google/uuid"
)

// Token purposes. Access tokens gate every bearer route; reset tokens are
// short-lived credentials mailed out by the forgot-password flow. A token of
// one purpose is never accepted where the other is expected.
const (
	TokenPurposeAccess = "access"
	TokenPurposeReset  = "reset"
)

// Claims carries the identity bound into a verified token.
type Claims struct {
	UserID  uuid.UUID
	Purpose string
}

// TokenService defines the interface for issuing and verifying signed,
// time-boxed bearer tokens. It abstracts the JWT details from the use cases.
type TokenService interface {
	// GenerateAccessToken issues the credential returned by login.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// GenerateResetToken issues the short-lived credential for password resets.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature, expiry and purpose, returning the
	// bound claims.
	ValidateToken(tokenString, purpose string) (*Claims, error)
}
