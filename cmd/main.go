package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/clients/aiparse"
	"github.com/vieclam/jobboard/internal/config"
	"github.com/vieclam/jobboard/internal/events"
	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/metrics"
	"github.com/vieclam/jobboard/internal/repositories"
	"github.com/vieclam/jobboard/internal/server"
	"github.com/vieclam/jobboard/internal/services"
)

func subscribeEventLoggers(bus EventBus.Bus) {
	err := bus.Subscribe(events.CVParsedTopic, func(e events.CVParsed) {
		log.Infof("cv parsed for user %v, file %v, %v skills extracted", e.UserID, e.FileName, e.SkillCount)
	})
	if err != nil {
		log.Fatalf("can't subscribe to cv parsed events: %v", err)
	}

	err = bus.Subscribe(events.JobAppliedTopic, func(e events.JobApplied) {
		log.Infof("user %v applied to job %v", e.UserID, e.JobID)
	})
	if err != nil {
		log.Fatalf("can't subscribe to job applied events: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	tracking := repositories.NewTrackingRepository(dbContext.DB)
	cvs := repositories.NewCVsRepository(dbContext.DB)

	bus := EventBus.New()
	subscribeEventLoggers(bus)

	cache := services.NewSearchCache(cfg.Search.CacheTTL)
	engine := services.NewSearchEngine(jobs, cache, cfg.Search.OverfetchFactor)
	trackingService := services.NewTrackingService(tracking, bus)

	aiClient := aiparse.NewClient(cfg.AI.BaseURL)
	aiClient.SetRateLimit(cfg.AI.MaxRequestsPerSecond)
	processor := services.NewCVProcessor(aiClient, cvs, bus, cfg.AI.PollInterval, cfg.AI.PollTimeout)

	cleaner, err := services.NewJobsCleaner(jobs, cfg.Jobs.RetentionDays)
	if err != nil {
		log.Fatalf("can't create jobs cleaner: %v", err)
	}
	defer cleaner.Stop()

	handlers := server.NewHandlers(engine, jobs, trackingService, processor, cvs)
	apiServer := server.New(cfg.Server.Port, handlers)
	go apiServer.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = apiServer.Stop(shutdownCtx); err != nil {
		log.Errorf("http server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
