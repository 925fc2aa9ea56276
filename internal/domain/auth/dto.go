package auth

import "github.com/ydm-hr/hr-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken          string       `json:"access_token"`
	AccessTokenExpiresAt int64        `json:"access_token_expires_at"`
	User                 UserResponse `json:"user"`

	// Refresh token travels in an HttpOnly cookie, never in the body.
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresAt int64  `json:"-"`
}
