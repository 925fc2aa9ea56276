package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Login verifies credentials against the entity store and issues an
	// access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
