package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/auth"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// GormAuthRepo implements auth.Repository using GORM (v2).
type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetManagerBySSN(ctx context.Context, ssn string) (*entity.Manager, error) {
	var m entity.Manager
	if err := r.db.WithContext(ctx).First(&m, "ssn = ?", ssn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormAuthRepo) GetDriverByName(ctx context.Context, name string) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.db.WithContext(ctx).First(&d, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	return &d, nil
}

func (r *GormAuthRepo) GetClientByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	return &c, nil
}
