package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	clientpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/client"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// clientService implements client.Service.
type clientService struct {
	repo clientpkg.Repository
}

func NewClientService(repo clientpkg.Repository) clientpkg.Service {
	return &clientService{repo: repo}
}

func (s *clientService) RegisterClient(ctx context.Context, req clientpkg.RegisterClientRequest) (*entity.Client, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, errors.New("email and name required")
	}

	c := &entity.Client{Email: email, Name: name}

	addresses := make([]entity.ClientAddress, 0, len(req.Addresses))
	for _, a := range req.Addresses {
		addresses = append(addresses, entity.ClientAddress{
			ID:          uuid.New(),
			ClientEmail: email,
			Road:        strings.TrimSpace(a.Road),
			HouseNumber: strings.TrimSpace(a.HouseNumber),
			City:        strings.TrimSpace(a.City),
		})
	}

	cards := make([]entity.CreditCard, 0, len(req.CreditCards))
	for _, cc := range req.CreditCards {
		cards = append(cards, entity.CreditCard{
			ID:          uuid.New(),
			Number:      strings.TrimSpace(cc.Number),
			ClientEmail: email,
			Road:        strings.TrimSpace(cc.BillingAddress.Road),
			HouseNumber: strings.TrimSpace(cc.BillingAddress.HouseNumber),
			City:        strings.TrimSpace(cc.BillingAddress.City),
		})
	}

	return s.repo.StoreClient(ctx, c, addresses, cards)
}

func (s *clientService) GetClient(ctx context.Context, email string) (*entity.Client, error) {
	return s.repo.GetClientByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
