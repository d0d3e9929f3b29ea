package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vieclam/jobboard/internal/entities"
)

type Businesses struct {
	db *gorm.DB
}

func NewBusinessesRepository(db *gorm.DB) *Businesses {
	return &Businesses{db: db}
}

func (repo *Businesses) Add(ctx context.Context, business *entities.Business) error {
	return repo.db.WithContext(ctx).Create(business).Error
}

func (repo *Businesses) GetByID(ctx context.Context, id uint) (*entities.Business, error) {

	var business entities.Business
	err := repo.db.WithContext(ctx).First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}
