package rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
)

// Service exposes availability queries and rental listings.
type Service interface {
	IsModelFree(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error)
	ListFreeModels(ctx context.Context, date time.Time) ([]fleet.ModelInfo, error)
	ListClientRentals(ctx context.Context, clientEmail string) ([]RentalDetail, error)
}
