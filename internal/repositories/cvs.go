package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vieclam/jobboard/internal/entities"
)

type CVs struct {
	db *gorm.DB
}

func NewCVsRepository(db *gorm.DB) *CVs {
	return &CVs{db: db}
}

// Upsert inserts or replaces the user's parsed profile. One profile per
// user, a re-upload overwrites the previous parse.
func (repo *CVs) Upsert(ctx context.Context, profile *entities.CVProfile) error {
	return repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (repo *CVs) GetByUser(ctx context.Context, userID int64) (*entities.CVProfile, error) {

	var profile entities.CVProfile
	err := repo.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
