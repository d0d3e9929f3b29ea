package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/vieclam/jobboard/internal/domain/models"
	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/repositories"
)

// fakeJobFinder applies JobQuery against an in-memory slice the way the
// real repository does against storage: eligibility cutoff, substring
// pre-filter, newest-first order, offset/limit.
type fakeJobFinder struct {
	jobs      []entities.Job
	findCalls int
	failWith  error
}

func (f *fakeJobFinder) matching(q repositories.JobQuery) []entities.Job {
	var matched []entities.Job
	for _, job := range f.jobs {
		if job.ExpiryTime.Before(q.Now) {
			continue
		}
		if q.Remote && !isRemote(job) {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}

func (f *fakeJobFinder) Count(_ context.Context, q repositories.JobQuery) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.matching(q))), nil
}

func (f *fakeJobFinder) Find(_ context.Context, q repositories.JobQuery, offset, limit int) ([]entities.Job, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.findCalls++

	matched := f.matching(q)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func makeJobs(now time.Time, total, remote int) []entities.Job {
	jobs := make([]entities.Job, 0, total)
	for i := 0; i < total; i++ {
		job := entities.Job{
			ID:         uint(i + 1),
			Title:      fmt.Sprintf("Backend Developer %d", i+1),
			Type:       "Full-time",
			City:       "Hồ Chí Minh",
			ExpiryTime: now.Add(24 * time.Hour),
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
		}
		if i < remote {
			job.Type = "Remote"
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func newTestEngine(finder *fakeJobFinder, now time.Time) *SearchEngine {
	engine := NewSearchEngine(finder, NewSearchCache(time.Minute), 3)
	engine.SetClock(func() time.Time { return now })
	return engine
}

func Test_Search_RemoteFilterReturnsOnlyRemoteJobs(t *testing.T) {

	assert := assert.New(t)
	now := time.Now()

	finder := &fakeJobFinder{jobs: makeJobs(now, 30, 10)}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(), models.JobFilter{Location: "Remote", Page: 1, Limit: 12})
	assert.NoError(err)
	assert.Len(result.Jobs, 10)
	assert.False(result.HasNext)
	assert.False(result.HasPrev)
	assert.EqualValues(10, result.TotalJobs)

	for _, job := range result.Jobs {
		assert.True(job.IsRemote)
	}
}

func Test_SearchFeed_RemoteFilterHasMoreFalseWhenUnderLimit(t *testing.T) {

	now := time.Now()
	finder := &fakeJobFinder{jobs: makeJobs(now, 30, 10)}
	engine := newTestEngine(finder, now)

	result, err := engine.SearchFeed(context.Background(), models.JobFilter{Location: "remote", Page: 1, Limit: 12})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 10)
	assert.False(t, result.HasMore)
}

func Test_Search_ExpiredJobsNeverAppear(t *testing.T) {

	now := time.Now()
	jobs := makeJobs(now, 5, 0)
	jobs[2].ExpiryTime = now.Add(-time.Hour)

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(), models.JobFilter{Page: 1, Limit: 12})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 4)
	for _, job := range result.Jobs {
		assert.NotEqual(t, jobs[2].ID, job.ID)
	}
}

func Test_Search_SalaryBoundaryWithOpenEndedRange(t *testing.T) {

	now := time.Now()
	jobs := makeJobs(now, 3, 0)
	jobs[0].Salary = "$2,000 - $3,000"
	jobs[1].Salary = "$1,999"
	jobs[2].Salary = "$2,500"

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	filter := models.JobFilter{Page: 1, Limit: 12}.WithSalaryRange("2000-9999")
	result, err := engine.Search(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 2)
	for _, job := range result.Jobs {
		assert.NotEqual(t, "$1,999", job.Salary)
	}
}

func Test_Search_ExperienceBucketFilter(t *testing.T) {

	now := time.Now()
	jobs := makeJobs(now, 4, 0)
	jobs[0].Experience = "2-4 năm"
	jobs[1].Experience = "Không yêu cầu"
	jobs[2].Experience = "5 năm"
	jobs[3].Experience = "3 năm"

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(),
		models.JobFilter{Experience: "2-4 years", Page: 1, Limit: 12})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 2)
}

func Test_Search_PageBoundaryAppliedAfterFiltering(t *testing.T) {

	now := time.Now()
	jobs := makeJobs(now, 20, 0)
	for i := range jobs {
		jobs[i].Salary = "$2,000"
	}

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	filter := models.JobFilter{Page: 1, Limit: 5}.WithSalaryRange("1000-3000")
	result, err := engine.Search(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 5)
}

func Test_Search_UnderFillWhenFewCandidatesSurvive(t *testing.T) {
	// over-fetching 3x is a heuristic: when fewer than limit of the
	// fetched candidates pass the salary predicate, the page comes back
	// short even though matching records exist further in the collection.
	now := time.Now()
	jobs := makeJobs(now, 60, 0)
	for i := range jobs {
		if i%10 == 0 {
			jobs[i].Salary = "$2,500"
		} else {
			jobs[i].Salary = "$500"
		}
	}

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	filter := models.JobFilter{Page: 1, Limit: 12}.WithSalaryRange("2000-9999")
	result, err := engine.Search(context.Background(), filter)
	assert.NoError(t, err)
	// 36 candidates fetched, only 4 of them pass
	assert.Len(t, result.Jobs, 4)
}

func Test_Search_SecondIdenticalCallIsServedFromCache(t *testing.T) {

	now := time.Now()
	finder := &fakeJobFinder{jobs: makeJobs(now, 30, 10)}
	engine := newTestEngine(finder, now)

	filter := models.JobFilter{Keyword: "backend", Page: 1, Limit: 12}
	first, err := engine.Search(context.Background(), filter)
	assert.NoError(t, err)

	second, err := engine.Search(context.Background(), filter)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, finder.findCalls)
}

func Test_Search_StorageErrorIsSurfacedNotSwallowed(t *testing.T) {

	now := time.Now()
	finder := &fakeJobFinder{failWith: errors.New("connection refused")}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(), models.JobFilter{Page: 1, Limit: 12})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func Test_Search_CompanyNameResolvedFromBusinessWhenAbsent(t *testing.T) {

	now := time.Now()
	jobs := makeJobs(now, 2, 0)
	jobs[0].CompanyName = "Denormalized Co"
	jobs[1].CompanyName = ""
	jobs[1].Business = &entities.Business{Name: "Fallback Co", Logo: "logo.png"}

	finder := &fakeJobFinder{jobs: jobs}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(), models.JobFilter{Page: 1, Limit: 12})
	assert.NoError(t, err)
	assert.Equal(t, "Denormalized Co", result.Jobs[0].CompanyName)
	assert.Equal(t, "Fallback Co", result.Jobs[1].CompanyName)
	assert.Equal(t, "logo.png", result.Jobs[1].Logo)
}

func Test_Search_PaginationMetadata(t *testing.T) {

	now := time.Now()
	finder := &fakeJobFinder{jobs: makeJobs(now, 30, 0)}
	engine := newTestEngine(finder, now)

	result, err := engine.Search(context.Background(), models.JobFilter{Page: 2, Limit: 12})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 12)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 3, result.TotalPages)
	assert.EqualValues(t, 30, result.TotalJobs)
	assert.True(t, result.HasNext)
	assert.True(t, result.HasPrev)
}
