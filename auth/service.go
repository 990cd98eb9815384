package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials means the supplied identifier matched no principal.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal is an authenticated manager, driver or client. ID is the
// business identifier the role uses (ssn / name / email).
type Principal struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Service authenticates by plain identifier, as the rental system's
// registration flows define no passwords. Each login issues a signed JWT.
type Service interface {
	LoginManager(ctx context.Context, ssn string) (*Principal, error)
	LoginDriver(ctx context.Context, name string) (*Principal, error)
	LoginClient(ctx context.Context, email string) (*Principal, error)
}
