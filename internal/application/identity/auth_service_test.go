package identity

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/identity"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/auth"
	"github.com/fleetledger/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "fleetledger-test",
		MaxRefreshCount:        3,
	})
}

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepository, *auth.InMemoryTokenBlacklist) {
	t.Helper()
	repo := new(MockUserRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	svc := NewAuthService(repo, newTestJWTService(), blacklist, zap.NewNop())
	return svc, repo, blacklist
}

func newTestUser(t *testing.T, tenantID uuid.UUID, password string) *identity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := identity.NewUser(tenantID, "asha", string(hash), "Asha Verma", identity.UserRoleOwner)
	require.NoError(t, err)
	user.ID = uuid.New()
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "correct-horse")

	repo.On("FindByUsername", mock.Anything, tenantID, "asha").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "asha",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "asha", resp.User.Username)
	assert.Equal(t, "owner", resp.User.Role)
	assert.NotNil(t, user.LastLoginAt)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "correct-horse")

	repo.On("FindByUsername", mock.Anything, tenantID, "asha").Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "asha",
		Password: "battery-staple",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()

	repo.On("FindByUsername", mock.Anything, tenantID, "ghost").
		Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	// Unknown user and wrong password must be indistinguishable
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "correct-horse")
	user.Lock()

	repo.On("FindByUsername", mock.Anything, tenantID, "asha").Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "asha",
		Password: "correct-horse",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestAuthService_RefreshToken_RotatesPair(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "correct-horse")

	repo.On("FindByUsername", mock.Anything, tenantID, "asha").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)
	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)

	login, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "asha",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), &RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The rotated refresh token must be single-use
	_, err = svc.RefreshToken(context.Background(), &RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), &RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, repo, blacklist := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "correct-horse")

	repo.On("FindByUsername", mock.Anything, tenantID, "asha").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	login, err := svc.Login(context.Background(), &LoginRequest{
		TenantID: tenantID,
		Username: "asha",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.AccessToken))

	claims, err := newTestJWTService().ValidateAccessToken(login.AccessToken)
	require.NoError(t, err)
	blacklisted, err := blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repo, blacklist := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "old-password")

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	issuedAt := time.Now().Add(-time.Minute)
	err := svc.ChangePassword(context.Background(), tenantID, user.ID, &ChangePasswordRequest{
		OldPassword: "old-password",
		NewPassword: "new-password-123",
	})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password-123")))

	invalidated, err := blacklist.IsUserTokenInvalidated(context.Background(), user.ID.String(), issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
	repo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	tenantID := uuid.New()
	user := newTestUser(t, tenantID, "old-password")

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)

	err := svc.ChangePassword(context.Background(), tenantID, user.ID, &ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
