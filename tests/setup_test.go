package tests

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/repositories"
)

const testDatabase = "testdatabase.db"

var (
	dbCtx    *repositories.DbContext
	seedTime = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
)

func upEnvironment() {

	var err error
	dbCtx, err = repositories.NewDbContext(testDatabase)
	if err != nil {
		log.Fatalf("could not create db context: %s", err)
	}

	if err = dbCtx.Migrate(); err != nil {
		log.Fatalf("could not migrate db: %s", err)
	}

	seedJobs()
}

// seedJobs inserts one business plus 31 listings: 30 active of which 10
// are remote, and one already expired. Salary and experience display
// strings vary so the in-memory predicates have something to chew on.
func seedJobs() {

	ctx := context.Background()
	businesses := repositories.NewBusinessesRepository(dbCtx.DB)
	jobs := repositories.NewJobsRepository(dbCtx.DB)

	business := &entities.Business{Name: "TechViet JSC", Logo: "techviet.png"}
	if err := businesses.Add(ctx, business); err != nil {
		log.Fatalf("could not seed business: %s", err)
	}

	for i := 0; i < 30; i++ {
		job := &entities.Job{
			Title:      fmt.Sprintf("Backend Developer %02d", i+1),
			Technique:  "Golang, PostgreSQL",
			City:       "Hồ Chí Minh",
			Location:   "District 1",
			Type:       "Full-time",
			Salary:     "$1,000 - $2,000",
			Experience: "1-2 năm",
			BusinessID: business.ID,
			ExpiryTime: seedTime.Add(30 * 24 * time.Hour),
			CreatedAt:  seedTime.Add(-time.Duration(i) * time.Hour),
		}
		if i < 10 {
			job.Type = "Remote"
		}
		if i%3 == 0 {
			job.Salary = "$2,500 - $3,500"
			job.Experience = "2-4 năm"
		}
		if err := jobs.Add(ctx, job); err != nil {
			log.Fatalf("could not seed job: %s", err)
		}
	}

	expired := &entities.Job{
		Title:      "Expired Legacy Role",
		Type:       "Full-time",
		BusinessID: business.ID,
		ExpiryTime: seedTime.Add(-24 * time.Hour),
		CreatedAt:  seedTime.Add(-48 * time.Hour),
	}
	if err := jobs.Add(ctx, expired); err != nil {
		log.Fatalf("could not seed expired job: %s", err)
	}
}

func downEnvironment() {
	_ = dbCtx.Close()
	_ = os.Remove(testDatabase)
}

func TestMain(m *testing.M) {

	upEnvironment()

	code := m.Run()

	downEnvironment()

	os.Exit(code)
}
