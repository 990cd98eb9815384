package manager

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// RegisterManagerRequest carries the data required to register a manager.
type RegisterManagerRequest struct {
	SSN   string
	Name  string
	Email string
}

// Service exposes manager registration and fleet reporting.
type Service interface {
	RegisterManager(ctx context.Context, req RegisterManagerRequest) (*entity.Manager, error)
	GetManager(ctx context.Context, ssn string) (*entity.Manager, error)

	TopClients(ctx context.Context, k int) ([]ClientRentalCount, error)
	ModelRentCounts(ctx context.Context) ([]ModelRentCount, error)
	DriverStats(ctx context.Context) ([]DriverStat, error)
	ClientsByCityPair(ctx context.Context, clientCity, driverCity string) ([]ClientInfo, error)
}
