package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ydm-hr/hr-backend-go/internal/domain/auth"
	"github.com/ydm-hr/hr-backend-go/internal/domain/user"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.userRepo.Authenticate(ctx, email, req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if u == nil || !verifyPassword(u.Password, req.Password) {
		slog.Info("login rejected", slog.String("email", email))
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Name)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID, req.RememberMe)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiresAt,
		User: auth.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh implements auth.AuthService. The refresh token itself is left
// in place; only a fresh access token is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(userID, "", "")
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiresAt,
		User:                 auth.UserResponse{ID: userID},
	}, nil
}

// Logout implements auth.AuthService. Revocation is unconditional; an
// already invalid token is not an error.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// verifyPassword handles the three credential shapes the store can
// return: a bcrypt hash, a legacy plaintext cell, or an empty value
// meaning the store verified the password itself.
func verifyPassword(stored, supplied string) bool {
	switch {
	case stored == "":
		return true
	case strings.HasPrefix(stored, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	default:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
	}
}
