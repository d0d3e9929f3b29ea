package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/domain/models"
	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/metrics"
	"github.com/vieclam/jobboard/internal/repositories"
	"github.com/vieclam/jobboard/pkg/relativetime"
)

const descriptionPreviewLength = 160

// remoteLocationValues are the location filter values that switch the
// query to the remote/WFH pattern group instead of a plain substring.
var remoteLocationValues = []string{"remote", "từ xa", "tu xa", "wfh"}

type jobFinder interface {
	Count(ctx context.Context, q repositories.JobQuery) (int64, error)
	Find(ctx context.Context, q repositories.JobQuery, offset, limit int) ([]entities.Job, error)
}

// SearchEngine turns a JobFilter into a page of formatted summaries.
//
// Keyword, location and type narrow the storage query directly. Salary
// and experience cannot (the columns are display strings), so for those
// the engine over-fetches and filters in memory. The page boundary is
// applied after filtering; the totals always come from the storage-level
// count, see models.SearchResult for the accuracy caveat.
type SearchEngine struct {
	jobs            jobFinder
	cache           *SearchCache
	overfetchFactor int
	now             func() time.Time
}

func NewSearchEngine(jobs jobFinder, cache *SearchCache, overfetchFactor int) *SearchEngine {
	if overfetchFactor < 1 {
		overfetchFactor = 1
	}
	return &SearchEngine{
		jobs:            jobs,
		cache:           cache,
		overfetchFactor: overfetchFactor,
		now:             time.Now,
	}
}

// SetClock replaces the engine's time source.
func (e *SearchEngine) SetClock(now func() time.Time) {
	e.now = now
}

// Search returns one page of listings with pagination metadata. Storage
// failure surfaces as an error, never as an empty page: callers can
// always tell "no matches" from "search failed".
func (e *SearchEngine) Search(ctx context.Context, filter models.JobFilter) (*models.SearchResult, error) {

	started := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(started).Seconds())
	}()

	filter = filter.Normalized()
	now := e.now()
	query := e.buildQuery(filter, now)

	key := e.cache.DeriveKey(query, filter.Page, filter.Limit, "page|"+filter.Label())
	if cached, found := e.cache.GetResult(key); found {
		metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.SearchCacheLookups.WithLabelValues("miss").Inc()

	jobs, total, err := e.fetch(ctx, query, filter)
	if err != nil {
		return nil, err
	}

	if filter.NeedsPostFilter() {
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return filter.Matches(job.Salary, job.Experience)
		})
	}
	if len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	result := &models.SearchResult{
		Jobs:        e.formatSummaries(jobs, now),
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalJobs:   total,
		HasNext:     filter.Page < totalPages,
		HasPrev:     filter.Page > 1,
	}

	e.cache.Set(key, result)
	return result, nil
}

// SearchFeed is the incremental-load variant: no totals, only whether
// another page is worth requesting.
func (e *SearchEngine) SearchFeed(ctx context.Context, filter models.JobFilter) (*models.FeedResult, error) {

	filter = filter.Normalized()
	now := e.now()
	query := e.buildQuery(filter, now)

	key := e.cache.DeriveKey(query, filter.Page, filter.Limit, "feed|"+filter.Label())
	if cached, found := e.cache.GetFeed(key); found {
		metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.SearchCacheLookups.WithLabelValues("miss").Inc()

	jobs, total, err := e.fetch(ctx, query, filter)
	if err != nil {
		return nil, err
	}

	if filter.NeedsPostFilter() {
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return filter.Matches(job.Salary, job.Experience)
		})
	}

	hasMore := len(jobs) > filter.Limit
	if !hasMore {
		// approximate when post-filtering is active: the count does not
		// reflect the in-memory predicates
		hasMore = int64(filter.Page*filter.Limit) < total && len(jobs) == filter.Limit
	}
	if len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}

	result := &models.FeedResult{
		Jobs:    e.formatSummaries(jobs, now),
		HasMore: hasMore,
	}

	e.cache.Set(key, result)
	return result, nil
}

func (e *SearchEngine) buildQuery(filter models.JobFilter, now time.Time) repositories.JobQuery {

	query := repositories.JobQuery{
		Now:     now,
		Keyword: strings.TrimSpace(filter.Keyword),
		Type:    strings.TrimSpace(filter.Type),
	}

	location := strings.ToLower(strings.TrimSpace(filter.Location))
	if lo.Contains(remoteLocationValues, location) {
		query.Remote = true
	} else {
		query.Location = location
	}

	return query
}

// fetch runs the count and record queries concurrently, they are
// independent reads. When post-filtering is required the record query
// over-fetches by the configured factor so the page still has a chance
// to fill after in-memory narrowing. That is a heuristic: if too few of
// the over-fetched candidates survive, the page comes back short even
// though later records match.
func (e *SearchEngine) fetch(ctx context.Context, query repositories.JobQuery,
	filter models.JobFilter) ([]entities.Job, int64, error) {

	fetchLimit := filter.Limit + 1
	if filter.NeedsPostFilter() {
		fetchLimit = filter.Limit * e.overfetchFactor
	}
	offset := (filter.Page - 1) * filter.Limit

	var (
		jobs      []entities.Job
		total     int64
		findErr   error
		countErr  error
		waitGroup sync.WaitGroup
	)

	waitGroup.Add(2)
	go func() {
		defer waitGroup.Done()
		jobs, findErr = e.jobs.Find(ctx, query, offset, fetchLimit)
	}()
	go func() {
		defer waitGroup.Done()
		total, countErr = e.jobs.Count(ctx, query)
	}()
	waitGroup.Wait()

	if findErr != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to fetch jobs: %v", findErr)
		return nil, 0, errors.Wrap(findErr, "search jobs")
	}
	if countErr != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to count jobs: %v", countErr)
		return nil, 0, errors.Wrap(countErr, "count jobs")
	}

	return jobs, total, nil
}

func (e *SearchEngine) formatSummaries(jobs []entities.Job, now time.Time) []models.JobSummary {
	return lo.Map(jobs, func(job entities.Job, _ int) models.JobSummary {
		return formatSummary(job, now)
	})
}

func formatSummary(job entities.Job, now time.Time) models.JobSummary {

	companyName, logo := job.CompanyName, job.Logo
	if job.Business != nil {
		if companyName == "" {
			companyName = job.Business.Name
		}
		if logo == "" {
			logo = job.Business.Logo
		}
	}

	return models.JobSummary{
		ID:          job.ID,
		Title:       job.Title,
		CompanyName: companyName,
		Location:    job.Location,
		City:        job.City,
		Salary:      job.Salary,
		Type:        job.Type,
		Description: truncate(job.Description, descriptionPreviewLength),
		PostedAgo:   relativetime.Format(job.CreatedAt, now),
		IsRemote:    isRemote(job),
		IsFeatured:  job.IsRecommended,
		Logo:        logo,
	}
}

func isRemote(job entities.Job) bool {
	haystack := strings.ToLower(job.Type + " " + job.Location + " " + job.City)
	for _, term := range []string{"remote", "wfh", "từ xa", "tại nhà"} {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
