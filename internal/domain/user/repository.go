package user

import "context"

// UserRepository defines credential lookup against the entity store.
type UserRepository interface {
	// Authenticate posts the credentials to the webhook and returns the
	// matching user, or nil when the store knows no such user.
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
