package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	reviewpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/review"
)

// reviewService implements review.Service.
type reviewService struct {
	repo reviewpkg.Repository
}

func NewReviewService(repo reviewpkg.Repository) reviewpkg.Service {
	return &reviewService{repo: repo}
}

func (s *reviewService) AddReview(ctx context.Context, req reviewpkg.AddReviewRequest) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, reviewpkg.ErrInvalidRating
	}
	clientEmail := strings.TrimSpace(req.ClientEmail)
	driverName := strings.TrimSpace(req.DriverName)

	served, err := s.repo.PairServed(ctx, clientEmail, driverName)
	if err != nil {
		return nil, err
	}
	if !served {
		return nil, reviewpkg.ErrNoPriorRental
	}

	rv := &entity.Review{
		ID:          uuid.New(),
		DriverName:  driverName,
		ClientEmail: clientEmail,
		Message:     strings.TrimSpace(req.Message),
		Rating:      req.Rating,
	}
	return s.repo.StoreReview(ctx, rv)
}

func (s *reviewService) ListDriverReviews(ctx context.Context, driverName string) ([]entity.Review, error) {
	return s.repo.ListDriverReviews(ctx, strings.TrimSpace(driverName))
}
