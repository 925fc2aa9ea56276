package sheetdb

import (
	"context"

	"github.com/ydm-hr/hr-backend-go/internal/domain/user"
)

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) user.UserRepository {
	return &UserRepository{client: client}
}

// Authenticate implements user.UserRepository. A null or empty response
// means the store knows no such user.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	raw, err := r.client.call(ctx, opAuthenticate, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	row, ok := decodeRow(raw)
	if !ok {
		return nil, nil
	}

	return &user.User{
		ID:       rowString(row, "id"),
		Name:     rowString(row, "name", "fullName", "full_name"),
		Email:    rowString(row, "email"),
		Password: rowString(row, "password", "password_hash", "passwordHash"),
	}, nil
}
