package driver

import (
	"context"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// RegisterDriverRequest carries the data required to register a driver.
type RegisterDriverRequest struct {
	Name        string
	Road        string
	HouseNumber string
	City        string
}

// Service exposes driver-related business operations.
type Service interface {
	RegisterDriver(ctx context.Context, req RegisterDriverRequest) (*entity.Driver, error)
	GetDriver(ctx context.Context, name string) (*entity.Driver, error)
	UpdateAddress(ctx context.Context, name, road, houseNumber, city string) error

	// DeclareCapability records that the driver may operate the given
	// vehicle model. Idempotent.
	DeclareCapability(ctx context.Context, driverName string, vehicleID, modelID uuid.UUID) error
	QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error)

	RemoveDriver(ctx context.Context, name string) (*RemovalResult, error)
}
