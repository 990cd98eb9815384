package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	clientpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/client"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

// GormClientRepo implements client.Repository using GORM (v2).
type GormClientRepo struct {
	db *gorm.DB
}

func NewGormClientRepo(db *gorm.DB) clientpkg.Repository {
	return &GormClientRepo{db: db}
}

func (r *GormClientRepo) StoreClient(ctx context.Context, c *entity.Client, addresses []entity.ClientAddress, cards []entity.CreditCard) (*entity.Client, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return clientpkg.ErrClientExists
			}
			return err
		}
		if len(addresses) > 0 {
			if err := tx.Create(&addresses).Error; err != nil {
				return err
			}
		}
		if len(cards) > 0 {
			if err := tx.Create(&cards).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormClientRepo) GetClientByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientpkg.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormClientRepo) ListClientAddresses(ctx context.Context, email string) ([]entity.ClientAddress, error) {
	var list []entity.ClientAddress
	if err := r.db.WithContext(ctx).Where("client_email = ?", email).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
