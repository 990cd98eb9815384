package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	reviewpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/review"
)

// GormReviewRepo implements review.Repository using GORM (v2).
type GormReviewRepo struct {
	db *gorm.DB
}

func NewGormReviewRepo(db *gorm.DB) reviewpkg.Repository {
	return &GormReviewRepo{db: db}
}

func (r *GormReviewRepo) PairServed(ctx context.Context, clientEmail, driverName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Rental{}).
		Where("client_email = ? AND driver_name = ?", clientEmail, driverName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormReviewRepo) StoreReview(ctx context.Context, rv *entity.Review) (*entity.Review, error) {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *GormReviewRepo) ListDriverReviews(ctx context.Context, driverName string) ([]entity.Review, error) {
	var list []entity.Review
	err := r.db.WithContext(ctx).
		Where("driver_name = ?", driverName).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
