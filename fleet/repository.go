package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// ModelInfo is a vehicle model joined with its brand for listings.
type ModelInfo struct {
	VehicleID        uuid.UUID `json:"vehicle_id"`
	ModelID          uuid.UUID `json:"model_id"`
	Brand            string    `json:"brand"`
	Color            string    `json:"color"`
	ConstructionYear int       `json:"construction_year"`
	Transmission     string    `json:"transmission"`
}

// Repository specifies catalog database operations for vehicles and models.
type Repository interface {
	StoreVehicle(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error)
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	GetVehicleByBrand(ctx context.Context, brand string) (*entity.Vehicle, error)
	// DeleteVehicleByBrand removes the vehicle and all of its models in one
	// transaction, returning the number of models removed.
	DeleteVehicleByBrand(ctx context.Context, brand string) (int64, error)

	StoreModel(ctx context.Context, m *entity.VehicleModel) (*entity.VehicleModel, error)
	GetModel(ctx context.Context, vehicleID, modelID uuid.UUID) (*entity.VehicleModel, error)
	DeleteModel(ctx context.Context, vehicleID, modelID uuid.UUID) error
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
