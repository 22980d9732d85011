package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pasar/config"
	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/domain/service"
	mockRepo "pasar/internal/mocks/repository"
	mockService "pasar/internal/mocks/service"
	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	tokenSvc  *mockService.MockTokenService
	mailer    *mockService.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	mailer := mockService.NewMockMailer(t)

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{ResetBaseURL: "http://localhost:5173/reset-password"}

	service := NewAuthService(txManager, userRepo, hasher, tokenSvc, mailer, cfg, testLogger())

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		mailer:    mailer,
	}
}

// expectTransaction makes Execute run the given function against the factory,
// with the factory handing out the user repo mock.
func (fx authServiceFixtures) expectTransaction(ctx context.Context) {
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "alice", "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
}

func TestAuthService_Register_ExistingUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "alice", "other@example.com").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "alice", "").
		Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenSvc.EXPECT().GenerateAccessToken(userID).Return("a-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "a-token", output.Token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "ghost", "").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "alice", "").
		Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	// Same answer as an unknown identifier.
	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.tokenSvc.EXPECT().GenerateResetToken(userID).Return("reset-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "alice@example.com", "http://localhost:5173/reset-password/reset-token").
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"})
	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ForgotPassword_MailFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.tokenSvc.EXPECT().GenerateResetToken(userID).Return("reset-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "alice@example.com", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailSendFailed)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash"}

	fx.tokenSvc.EXPECT().
		ValidateToken("reset-token", service.TokenPurposeReset).
		Return(&service.Claims{UserID: userID, Purpose: service.TokenPurposeReset}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new-hash", updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "new-pass"})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenSvc.EXPECT().
		ValidateToken("garbage", service.TokenPurposeReset).
		Return(nil, errors.New("token is expired"))

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "garbage", NewPassword: "new-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAuthService_UpdateAccount_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.userRepo.EXPECT().
		ExistsOtherWithUsernameOrEmail(ctx, userID, "newname", "").
		Return(false, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "newname", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)

	// The current password is accepted without verification; no Check call
	// is expected on the hasher.
	summary, err := fx.service.UpdateAccount(ctx, userID, &usecase.UpdateAccountInput{
		Username: "newname",
		Password: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, summary.ID)
	assert.Equal(t, "newname", summary.Username)
	assert.Equal(t, "alice@example.com", summary.Email)
}

func TestAuthService_UpdateAccount_Conflict(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.userRepo.EXPECT().
		ExistsOtherWithUsernameOrEmail(ctx, userID, "taken", "").
		Return(true, nil)

	_, err := fx.service.UpdateAccount(ctx, userID, &usecase.UpdateAccountInput{Username: "taken"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountConflict)
}

func TestAuthService_UpdateAccount_NewPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.userRepo.EXPECT().
		ExistsOtherWithUsernameOrEmail(ctx, userID, "", "").
		Return(false, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Username: "alice", PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "new-hash", user.PasswordHash)
		}).
		Return(nil)

	_, err := fx.service.UpdateAccount(ctx, userID, &usecase.UpdateAccountInput{NewPassword: "new-pass"})
	require.NoError(t, err)
}
