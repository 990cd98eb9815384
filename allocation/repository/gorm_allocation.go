package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	allocationpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// GormAllocationRepo implements allocation.Repository using GORM (v2).
// Requires gorm.Config{TranslateError: true} so unique-index violations
// arrive as gorm.ErrDuplicatedKey.
type GormAllocationRepo struct {
	db *gorm.DB
}

func NewGormAllocationRepo(db *gorm.DB) allocationpkg.Repository {
	return &GormAllocationRepo{db: db}
}

// InTx runs fn against a Repository bound to one transaction; fn returning
// an error rolls everything back.
func (r *GormAllocationRepo) InTx(ctx context.Context, fn func(tx allocationpkg.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormAllocationRepo{db: tx})
	})
}

func (r *GormAllocationRepo) GetModel(ctx context.Context, vehicleID, modelID uuid.UUID) (*entity.VehicleModel, error) {
	var m entity.VehicleModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND vehicle_id = ?", modelID, vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, allocationpkg.ErrModelNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormAllocationRepo) ModelBooked(ctx context.Context, vehicleID, modelID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Rental{}).
		Where("vehicle_id = ? AND model_id = ? AND rent_date = ?", vehicleID, modelID, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAllocationRepo) QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entity.CapabilityGrant{}).
		Where("vehicle_id = ? AND model_id = ?", vehicleID, modelID).
		Order("driver_name ASC").
		Pluck("driver_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *GormAllocationRepo) BusyDrivers(ctx context.Context, date time.Time) (map[string]struct{}, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entity.Rental{}).
		Where("rent_date = ?", date).
		Pluck("driver_name", &names).Error
	if err != nil {
		return nil, err
	}
	busy := make(map[string]struct{}, len(names))
	for _, n := range names {
		busy[n] = struct{}{}
	}
	return busy, nil
}

func (r *GormAllocationRepo) CreateRental(ctx context.Context, rental *entity.Rental) error {
	if err := r.db.WithContext(ctx).Create(rental).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return allocationpkg.ErrLedgerClash
		}
		return err
	}
	return nil
}
