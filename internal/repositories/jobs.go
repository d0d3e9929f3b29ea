package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vieclam/jobboard/internal/entities"
)

// remoteTerms is the pattern set that marks a listing as remote/WFH
// across the city, location and type columns.
var remoteTerms = []string{"remote", "wfh", "từ xa", "tại nhà"}

// JobQuery is the storage-expressible part of a search: eligibility
// cutoff plus keyword/location/type substring conditions. Salary and
// experience criteria are not here, they cannot be pushed down onto
// display strings and are applied in memory by the search engine.
type JobQuery struct {
	Now      time.Time
	Keyword  string
	Location string
	Remote   bool
	Type     string
}

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) scope(q JobQuery) *gorm.DB {

	db := repo.db.Model(&entities.Job{}).Where("expiry_time >= ?", q.Now)

	if q.Keyword != "" {
		keyword := "%" + strings.ToLower(q.Keyword) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(technique) LIKE ?",
			keyword, keyword, keyword, keyword)
	}

	if q.Remote {
		conditions := make([]string, 0, len(remoteTerms)*3)
		args := make([]interface{}, 0, len(remoteTerms)*3)
		for _, term := range remoteTerms {
			pattern := "%" + term + "%"
			conditions = append(conditions,
				"LOWER(city) LIKE ?", "LOWER(location) LIKE ?", "LOWER(type) LIKE ?")
			args = append(args, pattern, pattern, pattern)
		}
		db = db.Where(strings.Join(conditions, " OR "), args...)
	} else if q.Location != "" {
		location := "%" + strings.ToLower(q.Location) + "%"
		db = db.Where("LOWER(city) LIKE ? OR LOWER(location) LIKE ? OR LOWER(type) LIKE ?",
			location, location, location)
	}

	if q.Type != "" {
		db = db.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(q.Type)+"%")
	}

	return db
}

// Count returns the number of listings matching the storage-level query.
func (repo *Jobs) Count(ctx context.Context, q JobQuery) (int64, error) {

	var count int64
	if err := repo.scope(q).WithContext(ctx).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count jobs")
	}
	return count, nil
}

// Find fetches matching listings ordered newest first. The id tie-break
// keeps pagination deterministic for equal timestamps.
func (repo *Jobs) Find(ctx context.Context, q JobQuery, offset, limit int) ([]entities.Job, error) {

	var jobs []entities.Job
	err := repo.scope(q).WithContext(ctx).
		Preload("Business").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "find jobs")
	}
	return jobs, nil
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*entities.Job, error) {

	var job entities.Job
	err := repo.db.WithContext(ctx).Preload("Business").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

// RemoveExpired deletes listings whose expiry passed before the cutoff.
func (repo *Jobs) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Job{}, "expiry_time < ?", before)
	return res.RowsAffected, res.Error
}
