// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"pasar/config"
	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/domain/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
	resetBaseURL string
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	resetBaseURL := ""
	if cfg.Auth != nil {
		resetBaseURL = cfg.Auth.ResetBaseURL
	}

	return &authService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
		mailer:       mailer,
		logger:       logger,
		resetBaseURL: resetBaseURL,
	}
}

// Register creates a new account. The uniqueness check and the insert run in
// one transaction so a concurrent registration cannot slip between them.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Either field colliding rejects the registration.
		if _, err := userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email); err == nil {
			return domainerrors.ErrUserExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
		}

		return userRepo.Create(ctx, user)
	})
}

// Login verifies the credentials and issues the bearer token. An unknown
// identifier and a wrong password answer identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}

// ForgotPassword issues a reset token and mails the reset link. A send
// failure is reported to the caller, never retried.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.tokenSvc.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	resetURL := fmt.Sprintf("%s/%s", srv.resetBaseURL, token)
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		srv.logger.Error("Failed to send password reset mail", "error", err, "email", user.Email)

		return domainerrors.ErrEmailSendFailed
	}

	return nil
}

// ResetPassword verifies the reset token and overwrites the stored hash.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.tokenSvc.ValidateToken(input.Token, service.TokenPurposeReset)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hash

	return srv.userRepo.Update(ctx, user)
}

// UpdateAccount applies a partial account update. The conflict check excludes
// the caller and runs in the same transaction as the write.
func (srv *authService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.AccountSummary, error) {
	var summary *usecase.AccountSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		taken, err := userRepo.ExistsOtherWithUsernameOrEmail(ctx, userID, input.Username, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check account conflict")
		}
		if taken {
			return domainerrors.ErrAccountConflict
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for account update")
		}

		// Empty fields keep their stored value.
		if input.Username != "" {
			user.Username = input.Username
		}
		if input.Email != "" {
			user.Email = input.Email
		}
		if input.NewPassword != "" {
			hash, err := srv.hasher.Hash(input.NewPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash new password")
			}
			user.PasswordHash = hash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		summary = &usecase.AccountSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
