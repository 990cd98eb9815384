package review

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// Repository specifies review database operations.
type Repository interface {
	// PairServed reports whether any rental links the client and the driver,
	// regardless of date.
	PairServed(ctx context.Context, clientEmail, driverName string) (bool, error)
	StoreReview(ctx context.Context, rv *entity.Review) (*entity.Review, error)
	ListDriverReviews(ctx context.Context, driverName string) ([]entity.Review, error)
}
