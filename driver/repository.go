package driver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// RemovalResult reports what the driver-removal cascade deleted.
type RemovalResult struct {
	ReviewsDeleted int64 `json:"reviews_deleted"`
	GrantsDeleted  int64 `json:"grants_deleted"`
	RentalsDeleted int64 `json:"rentals_deleted"`
}

// Repository specifies driver and capability-grant database operations.
type Repository interface {
	StoreDriver(ctx context.Context, d *entity.Driver) (*entity.Driver, error)
	GetDriverByName(ctx context.Context, name string) (*entity.Driver, error)
	UpdateAddress(ctx context.Context, name, road, houseNumber, city string) error

	// StoreGrant records a capability grant; granting the same tuple twice
	// is a no-op, not an error.
	StoreGrant(ctx context.Context, g *entity.CapabilityGrant) error
	QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error)

	// RemoveDriver runs the whole removal in one transaction: it fails with
	// ErrHasActiveRentals when any rental dated today or later exists, and
	// otherwise cascade-deletes reviews, grants, historical rentals and the
	// driver row.
	RemoveDriver(ctx context.Context, name string, today time.Time) (*RemovalResult, error)
}
