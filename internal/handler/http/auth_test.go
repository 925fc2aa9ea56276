package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydm-hr/hr-backend-go/internal/domain/auth"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/jwt"
)

type fakeAuthService struct {
	loginResp    auth.TokenResponse
	loginErr     error
	refreshErr   error
	revokedToken string
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if f.loginErr != nil {
		return auth.TokenResponse{}, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if f.refreshErr != nil {
		return auth.TokenResponse{}, f.refreshErr
	}
	return auth.TokenResponse{AccessToken: "new-access"}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	f.revokedToken = refreshToken
	return nil
}

func newAuthHandler(svc auth.AuthService) AuthHandler {
	jwtService := jwt.NewJWTService("test-secret-key-32-characters-ok", "15m", "24h", "720h")
	return NewAuthHandler(svc, jwtService)
}

func TestLoginSetsRefreshCookie(t *testing.T) {
	h := newAuthHandler(&fakeAuthService{loginResp: auth.TokenResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         auth.UserResponse{ID: "u1", Email: "jane@example.com"},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "jane@example.com", "password": "secret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.NotContains(t, rec.Body.String(), "refresh-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Equal(t, "refresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newAuthHandler(&fakeAuthService{loginErr: auth.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "jane@example.com", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	h := newAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshRequiresCookie(t *testing.T) {
	h := newAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshWithCookie(t *testing.T) {
	h := newAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "some-refresh"})
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestLogoutClearsCookie(t *testing.T) {
	svc := &fakeAuthService{}
	h := newAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "some-refresh"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-refresh", svc.revokedToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
