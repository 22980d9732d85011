package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pasar/internal/delivery/http/validator"
	domainerrors "pasar/internal/domain/errors"
	mocks "pasar/internal/mocks/usecase"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		}).
		Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret123"}`)

	err := h.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"not-an-email","password":"secret123"}`)

	err := h.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmailFormat)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "secret123"}).
		Return(&usecase.LoginOutput{Token: "signed-token"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"secret123"}`)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrMissingLoginFields)
}

func TestAuthHandler_Login_UsecaseError(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	uc.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "alice@example.com"}).
		Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/forgot-password",
		`{"email":"alice@example.com"}`)

	err := h.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password reset link sent to email")
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	uc.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "newpass456"}).
		Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/reset-password",
		`{"token":"reset-token","newPassword":"newpass456"}`)

	err := h.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password has been successfully reset")
}

func TestAuthHandler_UpdateAccount_Success(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	userID := uuid.New()
	uc.EXPECT().
		UpdateAccount(mock.Anything, userID, &usecase.UpdateAccountInput{Username: "alice2"}).
		Return(&usecase.AccountSummary{ID: userID, Username: "alice2", Email: "alice@example.com"}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/auth/account", `{"username":"alice2"}`)
	c.Set("userID", userID)

	err := h.UpdateAccount(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated successfully")
	assert.Contains(t, rec.Body.String(), `"username":"alice2"`)
}

func TestAuthHandler_UpdateAccount_MissingIdentity(t *testing.T) {
	t.Parallel()

	uc := mocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testHandlerLogger())

	c, rec := newJSONContext(http.MethodPut, "/api/auth/account", `{"username":"alice2"}`)

	err := h.UpdateAccount(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token data")
}
