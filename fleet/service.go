package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// RegisterModelRequest carries the data for a manager adding a model to a vehicle.
type RegisterModelRequest struct {
	VehicleID        uuid.UUID
	Color            string
	ConstructionYear int
	Transmission     string
}

// Service exposes catalog operations for managers and drivers.
type Service interface {
	RegisterVehicle(ctx context.Context, brand string) (*entity.Vehicle, error)
	RemoveVehicle(ctx context.Context, brand string) (int64, error)

	RegisterModel(ctx context.Context, req RegisterModelRequest) (*entity.VehicleModel, error)
	RemoveModel(ctx context.Context, vehicleID, modelID uuid.UUID) error
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
