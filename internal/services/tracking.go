package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/events"
	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/metrics"
)

type trackingRepository interface {
	SaveJob(ctx context.Context, userID int64, jobID uint) error
	UnsaveJob(ctx context.Context, userID int64, jobID uint) error
	GetSavedByUser(ctx context.Context, userID int64) ([]entities.SavedJob, error)
	HasApplied(ctx context.Context, userID int64, jobID uint) (bool, error)
	RecordApplication(ctx context.Context, userID int64, jobID uint) error
	GetApplicationsByUser(ctx context.Context, userID int64) ([]entities.Application, error)
}

type TrackingService struct {
	tracking trackingRepository
	bus      EventBus.Bus
}

func NewTrackingService(tracking trackingRepository, bus EventBus.Bus) *TrackingService {
	return &TrackingService{tracking: tracking, bus: bus}
}

func (s *TrackingService) SaveJob(ctx context.Context, userID int64, jobID uint) error {
	if err := s.tracking.SaveJob(ctx, userID, jobID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save job: %v", err)
		return err
	}
	return nil
}

func (s *TrackingService) UnsaveJob(ctx context.Context, userID int64, jobID uint) error {
	if err := s.tracking.UnsaveJob(ctx, userID, jobID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to unsave job: %v", err)
		return err
	}
	return nil
}

func (s *TrackingService) GetSavedJobs(ctx context.Context, userID int64) ([]entities.SavedJob, error) {
	return s.tracking.GetSavedByUser(ctx, userID)
}

// Apply records an application once per user+job pair. Re-applying is
// silently accepted without a second record or event.
func (s *TrackingService) Apply(ctx context.Context, userID int64, jobID uint) error {

	applied, err := s.tracking.HasApplied(ctx, userID, jobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to check existing application: %v", err)
		return err
	}
	if applied {
		return nil
	}

	if err = s.tracking.RecordApplication(ctx, userID, jobID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record application: %v", err)
		return err
	}

	metrics.ApplicationsCounter.Inc()
	s.bus.Publish(events.JobAppliedTopic, events.JobApplied{UserID: userID, JobID: jobID})
	return nil
}

func (s *TrackingService) GetApplications(ctx context.Context, userID int64) ([]entities.Application, error) {
	return s.tracking.GetApplicationsByUser(ctx, userID)
}
