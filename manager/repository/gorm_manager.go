package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	managerpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/manager"
)

// GormManagerRepo implements manager.Repository using GORM (v2). The
// reporting queries run as raw SQL aggregates over the ledger tables.
type GormManagerRepo struct {
	db *gorm.DB
}

func NewGormManagerRepo(db *gorm.DB) managerpkg.Repository {
	return &GormManagerRepo{db: db}
}

func (r *GormManagerRepo) StoreManager(ctx context.Context, m *entity.Manager) (*entity.Manager, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, managerpkg.ErrManagerExists
		}
		return nil, err
	}
	return m, nil
}

func (r *GormManagerRepo) GetManagerBySSN(ctx context.Context, ssn string) (*entity.Manager, error) {
	var m entity.Manager
	if err := r.db.WithContext(ctx).First(&m, "ssn = ?", ssn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, managerpkg.ErrManagerNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormManagerRepo) TopClients(ctx context.Context, k int) ([]managerpkg.ClientRentalCount, error) {
	var list []managerpkg.ClientRentalCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.name, c.email, COUNT(r.id) AS rentals
		FROM clients c
		JOIN rentals r ON r.client_email = c.email
		GROUP BY c.email, c.name
		ORDER BY rentals DESC, c.email ASC
		LIMIT ?`, k).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormManagerRepo) ModelRentCounts(ctx context.Context) ([]managerpkg.ModelRentCount, error) {
	var list []managerpkg.ModelRentCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id AS model_id, v.brand, COUNT(r.id) AS rentals
		FROM vehicle_models m
		JOIN vehicles v ON v.id = m.vehicle_id
		LEFT JOIN rentals r ON r.model_id = m.id
		GROUP BY m.id, v.brand
		ORDER BY v.brand ASC`).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormManagerRepo) DriverStats(ctx context.Context) ([]managerpkg.DriverStat, error) {
	var list []managerpkg.DriverStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.name,
		       (SELECT COUNT(*) FROM rentals r WHERE r.driver_name = d.name) AS rentals,
		       (SELECT AVG(rv.rating) FROM reviews rv WHERE rv.driver_name = d.name) AS avg_rating
		FROM drivers d
		ORDER BY d.name ASC`).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormManagerRepo) ClientsByCityPair(ctx context.Context, clientCity, driverCity string) ([]managerpkg.ClientInfo, error) {
	var list []managerpkg.ClientInfo
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.name, c.email
		FROM clients c
		JOIN client_addresses ca ON ca.client_email = c.email
		JOIN rentals r ON r.client_email = c.email
		JOIN drivers d ON d.name = r.driver_name
		WHERE ca.city = ? AND d.city = ?
		ORDER BY c.email ASC`, clientCity, driverCity).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
