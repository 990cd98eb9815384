package manager

import (
	"context"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// ClientRentalCount is a client ranked by number of rentals.
type ClientRentalCount struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rentals int64  `json:"rentals"`
}

// ModelRentCount is a vehicle model with its total rental count.
type ModelRentCount struct {
	ModelID uuid.UUID `json:"model_id"`
	Brand   string    `json:"brand"`
	Rentals int64     `json:"rentals"`
}

// DriverStat aggregates a driver's rental count and average review rating.
// AvgRating is nil for drivers with no reviews.
type DriverStat struct {
	Name      string   `json:"name"`
	Rentals   int64    `json:"rentals"`
	AvgRating *float64 `json:"avg_rating"`
}

// ClientInfo identifies a client in reporting output.
type ClientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Repository specifies manager storage and reporting queries.
type Repository interface {
	StoreManager(ctx context.Context, m *entity.Manager) (*entity.Manager, error)
	GetManagerBySSN(ctx context.Context, ssn string) (*entity.Manager, error)

	TopClients(ctx context.Context, k int) ([]ClientRentalCount, error)
	ModelRentCounts(ctx context.Context) ([]ModelRentCount, error)
	DriverStats(ctx context.Context) ([]DriverStat, error)
	// ClientsByCityPair lists clients with an address in clientCity who have
	// rented with a driver living in driverCity.
	ClientsByCityPair(ctx context.Context, clientCity, driverCity string) ([]ClientInfo, error)
}
