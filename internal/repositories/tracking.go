package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vieclam/jobboard/internal/entities"
)

type Tracking struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *Tracking {
	return &Tracking{db: db}
}

// SaveJob bookmarks a listing for a user. Saving twice is a no-op.
func (repo *Tracking) SaveJob(ctx context.Context, userID int64, jobID uint) error {
	return repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.SavedJob{UserID: userID, JobID: jobID}).Error
}

func (repo *Tracking) UnsaveJob(ctx context.Context, userID int64, jobID uint) error {
	return repo.db.WithContext(ctx).
		Delete(&entities.SavedJob{}, "user_id = ? AND job_id = ?", userID, jobID).Error
}

func (repo *Tracking) GetSavedByUser(ctx context.Context, userID int64) ([]entities.SavedJob, error) {

	var saved []entities.SavedJob
	err := repo.db.WithContext(ctx).
		Preload("Job").Preload("Job.Business").
		Order("created_at DESC").
		Find(&saved, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// HasApplied reports whether a user already applied to a listing.
func (repo *Tracking) HasApplied(ctx context.Context, userID int64, jobID uint) (bool, error) {

	var application entities.Application
	err := repo.db.WithContext(ctx).
		First(&application, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (repo *Tracking) RecordApplication(ctx context.Context, userID int64, jobID uint) error {
	return repo.db.WithContext(ctx).Create(&entities.Application{
		UserID: userID,
		JobID:  jobID,
		Status: entities.ApplicationSubmitted,
	}).Error
}

func (repo *Tracking) GetApplicationsByUser(ctx context.Context, userID int64) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Preload("Job").Preload("Job.Business").
		Order("created_at DESC").
		Find(&applications, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
