package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// Repository is the allocation engine's view of storage. InTx yields a
// Repository bound to one database transaction so the whole check-then-commit
// sequence of a booking attempt is indivisible.
type Repository interface {
	InTx(ctx context.Context, fn func(tx Repository) error) error

	GetModel(ctx context.Context, vehicleID, modelID uuid.UUID) (*entity.VehicleModel, error)
	// ModelBooked reports whether a rental already exists for the model on the date.
	ModelBooked(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error)
	// QualifiedDrivers returns grant holders for the model ordered by name.
	QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error)
	// BusyDrivers returns the names of every driver holding a rental on the date.
	BusyDrivers(ctx context.Context, date time.Time) (map[string]struct{}, error)
	// CreateRental inserts the ledger row; a unique-index violation is
	// returned as ErrLedgerClash.
	CreateRental(ctx context.Context, r *entity.Rental) error
}
