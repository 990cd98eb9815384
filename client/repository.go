package client

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// Repository specifies client database operations.
type Repository interface {
	// StoreClient persists the client together with their addresses and
	// credit cards in one transaction.
	StoreClient(ctx context.Context, c *entity.Client, addresses []entity.ClientAddress, cards []entity.CreditCard) (*entity.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*entity.Client, error)
	ListClientAddresses(ctx context.Context, email string) ([]entity.ClientAddress, error)
}
