package ports

import "context"

// AuthService authenticates the admin and issues bearer tokens.
type AuthService interface {
	// Login returns a signed token on success. A bad email and a bad password
	// are indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
