// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pasar/config"
	"pasar/internal/domain/service"
)

const (
	defaultAccessTTL = time.Hour
	defaultResetTTL  = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	resetTTL  time.Duration // Time-to-live for password reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTTL
	resetTTL := defaultResetTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		secret:    cfg.SecretKey.Token,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}, nil
}

// GenerateAccessToken creates the bearer token handed out by login.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.accessTTL, service.TokenPurposeAccess)
}

// GenerateResetToken creates the short-lived token mailed out for password resets.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.resetTTL, service.TokenPurposeReset)
}

// ValidateToken checks signature, expiry and purpose, and extracts the claims.
func (s *jwtService) ValidateToken(tokenString, purpose string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	tokenPurpose, _ := claims["type"].(string)
	if tokenPurpose != purpose {
		return nil, errors.Errorf("unexpected token type %q", tokenPurpose)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "parse token subject")
	}

	return &service.Claims{UserID: userID, Purpose: tokenPurpose}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, purpose string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),            // Subject (who the token is for)
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
		"type": purpose,                    // Purpose of the token (access or reset)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
