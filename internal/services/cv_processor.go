package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/clients/aiparse"
	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/events"
	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/metrics"
)

type cvRepository interface {
	Upsert(ctx context.Context, profile *entities.CVProfile) error
}

type parseClient interface {
	Upload(ctx context.Context, fileName string, file io.Reader) (string, error)
	GetResult(ctx context.Context, taskID string) (*aiparse.ParseResult, error)
}

// CVProcessor drives the upload-poll-upsert pipeline: stream the file
// to the AI service, wait for the parse to finish, store the profile.
type CVProcessor struct {
	client       parseClient
	cvs          cvRepository
	bus          EventBus.Bus
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func NewCVProcessor(client parseClient, cvs cvRepository, bus EventBus.Bus,
	pollInterval, pollTimeout time.Duration) *CVProcessor {

	return &CVProcessor{
		client:       client,
		cvs:          cvs,
		bus:          bus,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

func (p *CVProcessor) Process(ctx context.Context, userID int64, fileName string, file io.Reader) (*entities.CVProfile, error) {

	start := time.Now()
	taskID, err := p.client.Upload(ctx, fileName, file)
	metrics.CVParseStepDuration.WithLabelValues("upload").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("failed to upload CV: %v", err)
		return nil, err
	}

	start = time.Now()
	result, err := p.awaitResult(ctx, taskID)
	metrics.CVParseStepDuration.WithLabelValues("poll").Observe(time.Since(start).Seconds())

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
				Errorf("failed to get parse result for task %v: %v", taskID, err)
		}
		return nil, err
	}

	profile := &entities.CVProfile{
		UserID:     userID,
		FileName:   fileName,
		Skills:     strings.Join(result.Skills, ","),
		Summary:    result.Summary,
		Education:  result.Education,
		RawPayload: result.Raw,
		ParsedAt:   time.Now(),
	}

	if err = p.cvs.Upsert(ctx, profile); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to upsert CV profile: %v", err)
		return nil, err
	}

	p.bus.Publish(events.CVParsedTopic, events.CVParsed{
		UserID:     userID,
		FileName:   fileName,
		SkillCount: len(result.Skills),
	})

	return profile, nil
}

func (p *CVProcessor) awaitResult(ctx context.Context, taskID string) (*aiparse.ParseResult, error) {

	ctx, cancel := context.WithTimeout(ctx, p.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		result, err := p.client.GetResult(ctx, taskID)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, aiparse.ErrNotReady) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "waiting for parse result")
		case <-ticker.C:
		}
	}
}
