package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ydm-hr/hr-backend-go/internal/domain/auth"
	"github.com/ydm-hr/hr-backend-go/internal/domain/user"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	user      *user.User
	lastEmail string
}

func (f *fakeUserRepo) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	f.lastEmail = email
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func newJWT(t *testing.T) jwt.Service {
	t.Helper()
	return jwt.NewJWTService("test-secret-key-32-characters-ok", "15m", "24h", "720h")
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginWithBcryptHash(t *testing.T) {
	repo := &fakeUserRepo{user: &user.User{
		ID:       "u1",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: hashPassword(t, "correct horse"),
	}}
	svc := NewAuthService(repo, newJWT(t))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Jane@Example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", repo.lastEmail)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Jane Doe", resp.User.Name)
}

func TestLoginWithLegacyPlaintextCell(t *testing.T) {
	repo := &fakeUserRepo{user: &user.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: "plain-secret",
	}}
	svc := NewAuthService(repo, newJWT(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "plain-secret",
	})

	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{user: &user.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: hashPassword(t, "correct horse"),
	}}
	svc := NewAuthService(repo, newJWT(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newJWT(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newJWT(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	repo := &fakeUserRepo{user: &user.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: "plain-secret",
	}}
	svc := NewAuthService(repo, newJWT(t))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "plain-secret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "u1", refreshed.User.ID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	jwtService := newJWT(t)
	svc := NewAuthService(&fakeUserRepo{}, jwtService)

	accessToken, _, err := jwtService.GenerateAccessToken("u1", "jane@example.com", "Jane")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newJWT(t))

	_, err := svc.Refresh(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	repo := &fakeUserRepo{user: &user.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: "plain-secret",
	}}
	svc := NewAuthService(repo, newJWT(t))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "plain-secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
