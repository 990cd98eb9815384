package review

import (
	"context"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// AddReviewRequest carries a client's rating of a driver.
type AddReviewRequest struct {
	ClientEmail string
	DriverName  string
	Message     string
	Rating      int
}

// Service exposes review operations.
type Service interface {
	// AddReview accepts the review only when some rental links the client
	// and the driver; otherwise it fails with ErrNoPriorRental.
	AddReview(ctx context.Context, req AddReviewRequest) (*entity.Review, error)
	ListDriverReviews(ctx context.Context, driverName string) ([]entity.Review, error)
}
