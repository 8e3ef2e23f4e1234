package services

import (
	"context"
	"fmt"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
	"github.com/asadk/maktab/internal/pkg/apperrors"
	"github.com/asadk/maktab/internal/pkg/auth"
	"github.com/asadk/maktab/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch *dto.UpdateUserRequest) (*models.User, error)
}

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance.
func NewAuthService(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account with a hashed password.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.Validation("role", "unknown role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Password:     hashed,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		ProfileImage: req.ProfileImage,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a token pair. The refresh token is
// persisted so it can be revoked.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Str("username", user.Username).Msg("User logged in")
	return user, tokens, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// GetUser retrieves a user profile by ID.
func (s *authServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser patches a user profile, hashing the password when one is supplied.
func (s *authServiceImpl) UpdateUser(ctx context.Context, id int64, patch *dto.UpdateUserRequest) (*models.User, error) {
	if patch.Password != nil {
		hashed, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		patch.Password = &hashed
	}

	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	// A password change invalidates every outstanding session.
	if patch.Password != nil {
		if err := s.tokenRepo.RevokeUserTokens(ctx, id); err != nil {
			logger.Warn().Err(err).Int64("userId", id).Msg("Failed to revoke user tokens after password change")
		}
	}

	return user, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}
