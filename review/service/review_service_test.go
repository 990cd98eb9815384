package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	reviewpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/review"
	reviewrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/review/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Rental{}, &entity.Review{}))
	return db
}

func newTestService(t *testing.T) (reviewpkg.Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewReviewService(reviewrepo.NewGormReviewRepo(db)), db
}

func seedRental(t *testing.T, db *gorm.DB, email, driver string) {
	t.Helper()
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Rental{
		ID:          uuid.New(),
		RentDate:    day,
		ClientEmail: email,
		DriverName:  driver,
		VehicleID:   uuid.New(),
		ModelID:     uuid.New(),
	}).Error)
}

func TestAddReview_RequiresPriorRental(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedRental(t, db, "jane@example.com", "Alice")

	_, err := svc.AddReview(ctx, reviewpkg.AddReviewRequest{
		ClientEmail: "jane@example.com",
		DriverName:  "Bob",
		Message:     "never met this driver",
		Rating:      1,
	})
	assert.ErrorIs(t, err, reviewpkg.ErrNoPriorRental)

	_, err = svc.AddReview(ctx, reviewpkg.AddReviewRequest{
		ClientEmail: "john@example.com",
		DriverName:  "Alice",
		Message:     "never rode with her",
		Rating:      5,
	})
	assert.ErrorIs(t, err, reviewpkg.ErrNoPriorRental)

	rv, err := svc.AddReview(ctx, reviewpkg.AddReviewRequest{
		ClientEmail: "jane@example.com",
		DriverName:  "Alice",
		Message:     "smooth ride",
		Rating:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", rv.DriverName)
	assert.Equal(t, 5, rv.Rating)
}

func TestAddReview_RatingBounds(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedRental(t, db, "jane@example.com", "Alice")

	for _, rating := range []int{0, -3, 6, 11} {
		_, err := svc.AddReview(ctx, reviewpkg.AddReviewRequest{
			ClientEmail: "jane@example.com",
			DriverName:  "Alice",
			Rating:      rating,
		})
		assert.ErrorIs(t, err, reviewpkg.ErrInvalidRating, "rating %d", rating)
	}
}

func TestListDriverReviews(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedRental(t, db, "jane@example.com", "Alice")
	seedRental(t, db, "john@example.com", "Alice")

	for _, req := range []reviewpkg.AddReviewRequest{
		{ClientEmail: "jane@example.com", DriverName: "Alice", Message: "great", Rating: 5},
		{ClientEmail: "john@example.com", DriverName: "Alice", Message: "late pickup", Rating: 2},
	} {
		_, err := svc.AddReview(ctx, req)
		require.NoError(t, err)
	}

	list, err := svc.ListDriverReviews(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.ListDriverReviews(ctx, "Bob")
	require.NoError(t, err)
	assert.Empty(t, list)
}
