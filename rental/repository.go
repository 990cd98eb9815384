package rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
)

// RentalDetail is a rental joined with display fields for client listings.
type RentalDetail struct {
	RentalID   uuid.UUID `json:"rental_id"`
	RentDate   time.Time `json:"rent_date"`
	Brand      string    `json:"brand"`
	Color      string    `json:"color"`
	DriverName string    `json:"driver_name"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	ModelID    uuid.UUID `json:"model_id"`
}

// Repository specifies read operations over the rental ledger. The ledger is
// written only by the allocation engine and the driver-removal cascade.
type Repository interface {
	// IsModelFree reports whether no rental exists for the model on the date.
	IsModelFree(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error)

	// ListFreeModels returns every model that is actually bookable on the
	// date: no rental for the model that day, and at least one qualified
	// driver without a rental that day.
	ListFreeModels(ctx context.Context, date time.Time) ([]fleet.ModelInfo, error)

	ListClientRentals(ctx context.Context, clientEmail string) ([]RentalDetail, error)
}
