package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
	rentalpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental"
)

// GormRentalRepo implements rental.Repository using GORM (v2).
type GormRentalRepo struct {
	db *gorm.DB
}

func NewGormRentalRepo(db *gorm.DB) rentalpkg.Repository {
	return &GormRentalRepo{db: db}
}

func (r *GormRentalRepo) IsModelFree(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Rental{}).
		Where("vehicle_id = ? AND model_id = ? AND rent_date = ?", vehicleID, modelID, entity.Day(date)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ListFreeModels keeps a model only when it has no rental on the date and at
// least one of its qualified drivers is free that day, which is exactly the
// precondition for a booking to succeed.
func (r *GormRentalRepo) ListFreeModels(ctx context.Context, date time.Time) ([]fleet.ModelInfo, error) {
	day := entity.Day(date)
	var list []fleet.ModelInfo
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.vehicle_id, m.id AS model_id, v.brand, m.color, m.construction_year, m.transmission
		FROM vehicle_models m
		JOIN vehicles v ON v.id = m.vehicle_id
		WHERE NOT EXISTS (
			SELECT 1 FROM rentals r
			WHERE r.vehicle_id = m.vehicle_id AND r.model_id = m.id AND r.rent_date = ?
		)
		AND EXISTS (
			SELECT 1 FROM capability_grants g
			WHERE g.vehicle_id = m.vehicle_id AND g.model_id = m.id
			AND g.driver_name NOT IN (
				SELECT r.driver_name FROM rentals r WHERE r.rent_date = ?
			)
		)
		ORDER BY v.brand ASC, m.created_at ASC`, day, day).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormRentalRepo) ListClientRentals(ctx context.Context, clientEmail string) ([]rentalpkg.RentalDetail, error) {
	var list []rentalpkg.RentalDetail
	err := r.db.WithContext(ctx).
		Model(&entity.Rental{}).
		Select("rentals.id AS rental_id, rentals.rent_date, vehicles.brand, vehicle_models.color, rentals.driver_name, rentals.vehicle_id, rentals.model_id").
		Joins("JOIN vehicles ON vehicles.id = rentals.vehicle_id").
		Joins("JOIN vehicle_models ON vehicle_models.id = rentals.model_id").
		Where("rentals.client_email = ?", clientEmail).
		Order("rentals.rent_date DESC").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
