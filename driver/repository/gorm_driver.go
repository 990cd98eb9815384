package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	driverpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// GormDriverRepo implements driver.Repository using GORM (v2).
type GormDriverRepo struct {
	db *gorm.DB
}

func NewGormDriverRepo(db *gorm.DB) driverpkg.Repository {
	return &GormDriverRepo{db: db}
}

func (r *GormDriverRepo) StoreDriver(ctx context.Context, d *entity.Driver) (*entity.Driver, error) {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, driverpkg.ErrDriverExists
		}
		return nil, err
	}
	return d, nil
}

func (r *GormDriverRepo) GetDriverByName(ctx context.Context, name string) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.db.WithContext(ctx).First(&d, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, driverpkg.ErrDriverNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *GormDriverRepo) UpdateAddress(ctx context.Context, name, road, houseNumber, city string) error {
	res := r.db.WithContext(ctx).Model(&entity.Driver{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"road":         road,
			"house_number": houseNumber,
			"city":         city,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return driverpkg.ErrDriverNotFound
	}
	return nil
}

// StoreGrant inserts the grant tuple; the unique index on
// (driver_name, vehicle_id, model_id) plus ON CONFLICT DO NOTHING makes a
// duplicate grant a silent no-op.
func (r *GormDriverRepo) StoreGrant(ctx context.Context, g *entity.CapabilityGrant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(g).Error
}

func (r *GormDriverRepo) QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error) {
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

func (r *GormDriverRepo) RemoveDriver(ctx context.Context, name string, today time.Time) (*driverpkg.RemovalResult, error) {
	result := &driverpkg.RemovalResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d entity.Driver
		if err := tx.First(&d, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return driverpkg.ErrDriverNotFound
			}
			return err
		}

		var active int64
		if err := tx.Model(&entity.Rental{}).
			Where("driver_name = ? AND rent_date >= ?", name, today).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return driverpkg.ErrHasActiveRentals
		}

		res := tx.Where("driver_name = ?", name).Delete(&entity.Review{})
		if res.Error != nil {
			return res.Error
		}
		result.ReviewsDeleted = res.RowsAffected

		res = tx.Where("driver_name = ?", name).Delete(&entity.CapabilityGrant{})
		if res.Error != nil {
			return res.Error
		}
		result.GrantsDeleted = res.RowsAffected

		res = tx.Where("driver_name = ?", name).Delete(&entity.Rental{})
		if res.Error != nil {
			return res.Error
		}
		result.RentalsDeleted = res.RowsAffected

		return tx.Delete(&d).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
