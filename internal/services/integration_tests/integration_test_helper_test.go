package integration_tests

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"talentflow/config"
	"talentflow/internal/database"
	"talentflow/internal/models"
	"talentflow/internal/storage/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to an int
func ptrInt(i int) *int { return &i }

// Helper to create a pointer to a string
func ptrString(s string) *string { return &s }

// newTestDB opens a fresh store in a per-test temp directory. The schema is
// applied by database.Open, exactly as in production.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(config.DBConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close() })
	return db
}

// seedTestJobs inserts n active jobs with dense orders 0..n-1.
func seedTestJobs(t *testing.T, ctx context.Context, db *sql.DB, n int) []models.Job {
	t.Helper()
	jobs := make([]models.Job, n)
	for i := range jobs {
		jobs[i] = models.Job{
			ID:     uuid.New(),
			Title:  fmt.Sprintf("Engineer %d", i),
			Slug:   fmt.Sprintf("engineer-%d", i),
			Status: models.JobStatusActive,
			Tags:   models.StringList{"remote"},
			Order:  i,
		}
	}
	require.NoError(t, sqlite.NewJobRepo(db).BulkInsert(ctx, jobs))
	return jobs
}

func createTestCandidate(t *testing.T, ctx context.Context, db *sql.DB, name, email string) models.Candidate {
	t.Helper()
	candidate := models.Candidate{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		Phone:         "555-0100",
		Location:      "Lisbon, PT",
		AppliedDate:   "2026-01-15",
		OverallStatus: "active",
		Timeline:      models.TimelineList{},
		Notes:         models.NoteList{},
	}
	require.NoError(t, sqlite.NewCandidateRepo(db).BulkInsert(ctx, []models.Candidate{candidate}))
	return candidate
}

func createTestApplication(t *testing.T, ctx context.Context, db *sql.DB, candidate models.Candidate, job models.Job, stage models.Stage) models.Application {
	t.Helper()
	app := models.Application{
		ID:               uuid.New(),
		CandidateID:      candidate.ID,
		JobID:            job.ID,
		Stage:            stage,
		CandidateName:    candidate.Name,
		CandidateEmail:   candidate.Email,
		JobTitle:         job.Title,
		AssessmentStatus: models.AssessmentNotStarted,
	}
	require.NoError(t, sqlite.NewApplicationRepo(db).BulkInsert(ctx, []models.Application{app}))
	return app
}

// jobOrders maps slug -> current order for every job in the store.
func jobOrders(t *testing.T, ctx context.Context, db *sql.DB) map[string]int {
	t.Helper()
	rows, err := db.QueryContext(ctx, "SELECT slug, sort_order FROM jobs")
	require.NoError(t, err)
	defer rows.Close()

	orders := make(map[string]int)
	for rows.Next() {
		var slug string
		var order int
		require.NoError(t, rows.Scan(&slug, &order))
		orders[slug] = order
	}
	require.NoError(t, rows.Err())
	return orders
}
