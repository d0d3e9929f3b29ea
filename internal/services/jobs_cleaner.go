package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/metrics"
)

type jobCleanupRepository interface {
	RemoveExpired(ctx context.Context, before time.Time) (int64, error)
}

// JobsCleaner removes listings whose expiry passed longer than the
// retention window ago. Recently expired listings stay in storage, the
// search engine already excludes them by the eligibility cutoff.
type JobsCleaner struct {
	jobs          jobCleanupRepository
	cron          *cron.Cron
	retentionDays int
}

func NewJobsCleaner(jobs jobCleanupRepository, retentionDays int) (*JobsCleaner, error) {

	if retentionDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	jc := &JobsCleaner{
		jobs:          jobs,
		cron:          cron.New(),
		retentionDays: retentionDays,
	}

	_, err := jc.cron.AddFunc("0 0 * * *", jc.cleanExpiredJobs)
	if err != nil {
		return nil, err
	}

	jc.cron.Start()
	log.Infof("jobs cleaner started, retention in days: %d", jc.retentionDays)
	return jc, nil
}

func (jc *JobsCleaner) Stop() {
	jc.cron.Stop()
}

func (jc *JobsCleaner) cleanExpiredJobs() {
	cutoff := time.Now().AddDate(0, 0, -jc.retentionDays)
	rowsAffected, err := jc.jobs.RemoveExpired(context.Background(), cutoff)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to clean expired jobs: %v", err)
	} else {
		metrics.CleanedJobsCounter.Add(float64(rowsAffected))
		log.Infof("expired jobs cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
