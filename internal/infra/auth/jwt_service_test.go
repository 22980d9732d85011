package auth

import (
	"testing"
	"time"

	"pasar/config"
	"pasar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL: time.Hour,
		ResetTokenTTL:  time.Hour,
	}

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken, service.TokenPurposeAccess)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenPurposeAccess, claims.Purpose)
}

func TestJWTService_PurposeMismatchRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	userID := uuid.New()

	resetToken, err := jwtService.GenerateResetToken(userID)
	assert.NoError(t, err)

	// A reset token must never pass as an access token, and vice versa.
	claims, err := jwtService.ValidateToken(resetToken, service.TokenPurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)

	accessToken, err := jwtService.GenerateAccessToken(userID)
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(accessToken, service.TokenPurposeReset)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenPurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": service.TokenPurposeAccess,
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.SecretKey.Token))
	assert.NoError(t, err)

	validated, err := jwtService.ValidateToken(expiredToken, service.TokenPurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, validated)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Token = "another_secret_entirely_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.GenerateAccessToken(userID)
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token, service.TokenPurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
