package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
)

// GormFleetRepo implements fleet.Repository using GORM (v2).
type GormFleetRepo struct {
	db *gorm.DB
}

func NewGormFleetRepo(db *gorm.DB) fleet.Repository {
	return &GormFleetRepo{db: db}
}

func (r *GormFleetRepo) StoreVehicle(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fleet.ErrVehicleExists
		}
		return nil, err
	}
	return v, nil
}

func (r *GormFleetRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *GormFleetRepo) GetVehicleByBrand(ctx context.Context, brand string) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "brand = ?", brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *GormFleetRepo) DeleteVehicleByBrand(ctx context.Context, brand string) (int64, error) {
	var modelsDeleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v entity.Vehicle
		if err := tx.First(&v, "brand = ?", brand).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fleet.ErrVehicleNotFound
			}
			return err
		}
		res := tx.Where("vehicle_id = ?", v.ID).Delete(&entity.VehicleModel{})
		if res.Error != nil {
			return res.Error
		}
		modelsDeleted = res.RowsAffected
		return tx.Delete(&v).Error
	})
	if err != nil {
		return 0, err
	}
	return modelsDeleted, nil
}

func (r *GormFleetRepo) StoreModel(ctx context.Context, m *entity.VehicleModel) (*entity.VehicleModel, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *GormFleetRepo) GetModel(ctx context.Context, vehicleID, modelID uuid.UUID) (*entity.VehicleModel, error) {
	var m entity.VehicleModel
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND vehicle_id = ?", modelID, vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fleet.ErrModelNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormFleetRepo) DeleteModel(ctx context.Context, vehicleID, modelID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND vehicle_id = ?", modelID, vehicleID).
		Delete(&entity.VehicleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fleet.ErrModelNotFound
	}
	return nil
}

func (r *GormFleetRepo) ListModels(ctx context.Context) ([]fleet.ModelInfo, error) {
	var list []fleet.ModelInfo
	err := r.db.WithContext(ctx).
		Model(&entity.VehicleModel{}).
		Select("vehicle_models.vehicle_id, vehicle_models.id AS model_id, vehicles.brand, vehicle_models.color, vehicle_models.construction_year, vehicle_models.transmission").
		Joins("JOIN vehicles ON vehicles.id = vehicle_models.vehicle_id").
		Order("vehicles.brand ASC, vehicle_models.created_at ASC").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
