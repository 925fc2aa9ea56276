package user

type User struct {
	ID    string
	Name  string
	Email string

	// Password is the credential column as stored in the user sheet: a
	// bcrypt hash for rows written by this system, legacy plaintext for
	// hand-entered rows, or empty when the webhook verified the
	// credentials itself.
	Password string
}
