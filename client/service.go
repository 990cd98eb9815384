package client

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// AddressInput is one address supplied at registration.
type AddressInput struct {
	Road        string
	HouseNumber string
	City        string
}

// CreditCardInput is one credit card with its billing address.
type CreditCardInput struct {
	Number         string
	BillingAddress AddressInput
}

// RegisterClientRequest carries the data required to register a client.
type RegisterClientRequest struct {
	Email       string
	Name        string
	Addresses   []AddressInput
	CreditCards []CreditCardInput
}

// Service exposes client-related business operations.
type Service interface {
	RegisterClient(ctx context.Context, req RegisterClientRequest) (*entity.Client, error)
	GetClient(ctx context.Context, email string) (*entity.Client, error)
}
