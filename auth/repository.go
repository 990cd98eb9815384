package auth

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// Repository exposes the lookups used for authentication.
type Repository interface {
	GetManagerBySSN(ctx context.Context, ssn string) (*entity.Manager, error)
	GetDriverByName(ctx context.Context, name string) (*entity.Driver, error)
	GetClientByEmail(ctx context.Context, email string) (*entity.Client, error)
}
