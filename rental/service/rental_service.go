package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
	rentalpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental"
)

// rentalService implements rental.Service.
type rentalService struct {
	repo rentalpkg.Repository
}

func NewRentalService(repo rentalpkg.Repository) rentalpkg.Service {
	return &rentalService{repo: repo}
}

func (s *rentalService) IsModelFree(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error) {
	return s.repo.IsModelFree(ctx, vehicleID, modelID, entity.Day(date))
}

func (s *rentalService) ListFreeModels(ctx context.Context, date time.Time) ([]fleet.ModelInfo, error) {
	return s.repo.ListFreeModels(ctx, entity.Day(date))
}

func (s *rentalService) ListClientRentals(ctx context.Context, clientEmail string) ([]rentalpkg.RentalDetail, error) {
	return s.repo.ListClientRentals(ctx, strings.TrimSpace(clientEmail))
}
