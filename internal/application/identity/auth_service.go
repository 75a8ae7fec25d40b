package identity

import (
	"context"
	"errors"
	"time"

	"github.com/fleetledger/backend/internal/domain/identity"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and account operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.TenantID, req.Username)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
			// Same error for unknown user and wrong password
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is not allowed to log in")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: user.TenantID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	})
	if err != nil {
		s.logger.Error("failed to generate token pair",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds if the timestamp write fails
		s.logger.Warn("failed to record login time",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  ToUserInfo(user),
	}, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, req *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if blacklisted, berr := s.blacklist.IsBlacklisted(ctx, claims.ID); berr == nil && blacklisted {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	tenantID, err := claims.GetTenantUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid token claims")
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid token claims")
	}

	if invalidated, berr := s.blacklist.IsUserTokenInvalidated(ctx, userID.String(), claims.IssuedAt.Time); berr == nil && invalidated {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	// Role is re-read so role changes take effect at refresh time
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User no longer exists")
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is not allowed to log in")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.Username, user.Role.String())
	if err != nil {
		return nil, mapTokenError(err)
	}

	// The old refresh token is single-use
	if claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if berr := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); berr != nil {
			s.logger.Warn("failed to blacklist rotated refresh token",
				zap.String("user_id", userID.String()),
				zap.Error(berr))
		}
	}

	return &RefreshTokenResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the presented access token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		// Expired or malformed tokens need no revocation
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to blacklist token on logout",
			zap.String("user_id", claims.UserID),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}
	return nil
}

// GetCurrentUser returns the account behind the authenticated request
func (s *AuthService) GetCurrentUser(ctx context.Context, tenantID, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	return ToUserInfo(user), nil
}

// ChangePassword verifies the old password and replaces it. All tokens issued
// before the change are invalidated.
func (s *AuthService) ChangePassword(ctx context.Context, tenantID, userID uuid.UUID, req *ChangePasswordRequest) error {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	if err := user.ChangePassword(string(hash)); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	// Revocation records only need to outlive the longest-lived token
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.RefreshExpiration()); err != nil {
		s.logger.Warn("failed to invalidate existing tokens after password change",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
	return nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded, please log in again")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	}
}
