package handler

import (
	"log/slog"
	"net/http"
	"regexp"

	"pasar/internal/delivery/http/response"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler holds dependencies for identity handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		return domainerrors.ErrInvalidEmailFormat
	}

	input := &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusCreated, "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request. Clients send either username or email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingLoginFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingLoginFields
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ForgotPassword issues a reset token and mails the reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Password reset link sent to email")
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword completes the reset flow.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	input := &usecase.ResetPasswordInput{Token: req.Token, NewPassword: req.NewPassword}
	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Password has been successfully reset")
}

type updateAccountRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// UpdateAccount handles partial account updates for the authenticated user.
func (h *AuthHandler) UpdateAccount(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return domainerrors.ErrInvalidEmailFormat
	}

	summary, err := h.uc.UpdateAccount(c.Request().Context(), userID, &usecase.UpdateAccountInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Profile updated successfully", map[string]any{
		"userProfile": summary,
	})
}
