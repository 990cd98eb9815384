package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
)

// fleetService implements fleet.Service.
type fleetService struct {
	repo fleet.Repository
}

// NewFleetService constructs a fleet.Service backed by the provided repository.
func NewFleetService(repo fleet.Repository) fleet.Service {
	return &fleetService{repo: repo}
}

func (s *fleetService) RegisterVehicle(ctx context.Context, brand string) (*entity.Vehicle, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, errors.New("brand required")
	}
	v := &entity.Vehicle{
		ID:    uuid.New(),
		Brand: brand,
	}
	return s.repo.StoreVehicle(ctx, v)
}

func (s *fleetService) RemoveVehicle(ctx context.Context, brand string) (int64, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return 0, errors.New("brand required")
	}
	return s.repo.DeleteVehicleByBrand(ctx, brand)
}

func (s *fleetService) RegisterModel(ctx context.Context, req fleet.RegisterModelRequest) (*entity.VehicleModel, error) {
	if _, err := s.repo.GetVehicleByID(ctx, req.VehicleID); err != nil {
		return nil, err
	}
	transmission := strings.ToLower(strings.TrimSpace(req.Transmission))
	if transmission != "manual" && transmission != "automatic" {
		return nil, errors.New("transmission must be manual or automatic")
	}
	if req.ConstructionYear < 1900 {
		return nil, errors.New("construction year out of range")
	}
	m := &entity.VehicleModel{
		ID:               uuid.New(),
		VehicleID:        req.VehicleID,
		Color:            strings.TrimSpace(req.Color),
		ConstructionYear: req.ConstructionYear,
		Transmission:     transmission,
	}
	return s.repo.StoreModel(ctx, m)
}

func (s *fleetService) RemoveModel(ctx context.Context, vehicleID, modelID uuid.UUID) error {
	return s.repo.DeleteModel(ctx, vehicleID, modelID)
}

func (s *fleetService) ListModels(ctx context.Context) ([]fleet.ModelInfo, error) {
	return s.repo.ListModels(ctx)
}
