package seed_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"talentflow/config"
	"talentflow/internal/database"
	"talentflow/internal/models"
	"talentflow/internal/seed"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeedConfig = config.SeedConfig{
	Jobs:                 10,
	Candidates:           20,
	AssessmentJobs:       3,
	AssignmentCap:        5,
	CandidateBatchSize:   7,
	ApplicationBatchSize: 9,
	MaxRetries:           3,
}

func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(config.DBConfig{Path: filepath.Join(t.TempDir(), "seed.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, seed.New(db, testSeedConfig).SeedIfNeeded(context.Background()))
	return db
}

func TestSeeder_PopulatesConfiguredVolumes(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	jobCount, err := sqlite.NewJobRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, testSeedConfig.Jobs, jobCount)

	candidateCount, err := sqlite.NewCandidateRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, testSeedConfig.Candidates, candidateCount)

	// Each candidate applies to 1-3 distinct jobs.
	appCount, err := sqlite.NewApplicationRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, appCount, int64(testSeedConfig.Candidates))
	assert.LessOrEqual(t, appCount, int64(3*testSeedConfig.Candidates))

	assessments, err := sqlite.NewAssessmentRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, assessments, testSeedConfig.AssessmentJobs)
	for _, a := range assessments {
		require.Len(t, a.Schema.Sections, 1)
		assert.Equal(t, "Technical Skills", a.Schema.Sections[0].Title)
		assert.Len(t, a.Schema.Sections[0].Questions, 5)
	}
}

func TestSeeder_JobShapes(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	resp, err := sqlite.NewJobRepo(db).List(ctx, &dto.ListJobsQuery{Sort: "order"})
	require.NoError(t, err)
	require.Len(t, resp, testSeedConfig.Jobs)

	assert.Equal(t, models.JobStatusArchived, resp[0].Status, "first seeded job is archived")

	archived := 0
	for i, job := range resp {
		assert.Equal(t, i, job.Order, "seeded orders are dense and index-aligned")
		assert.Len(t, job.Tags, 3)
		if job.Status == models.JobStatusArchived {
			archived++
			assert.Equal(t, 0, i%5, "every fifth job starting at index 0 is archived")
		}
	}
	assert.Equal(t, testSeedConfig.Jobs/5, archived)
}

func TestSeeder_ApplicationsAreDistinctPerCandidate(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	rows, err := db.QueryContext(ctx, "SELECT candidate_id, job_id, assessment_status, assessment_submission FROM applications")
	require.NoError(t, err)
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var candidateID, jobID uuid.UUID
		var status models.AssessmentStatus
		var submission sql.NullString
		require.NoError(t, rows.Scan(&candidateID, &jobID, &status, &submission))

		key := candidateID.String() + "/" + jobID.String()
		assert.False(t, seen[key], "candidate %s applied twice to job %s", candidateID, jobID)
		seen[key] = true

		// Non-default statuses always carry a shaped submission.
		if status != models.AssessmentNotStarted {
			assert.True(t, submission.Valid)
		}
	}
	require.NoError(t, rows.Err())
}

func TestSeeder_AssignmentsRespectStageAndCap(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	assignments, err := sqlite.NewAssignmentRepo(db).List(ctx, nil)
	require.NoError(t, err)

	appRepo := sqlite.NewApplicationRepo(db)
	perApp := make(map[uuid.UUID]int)
	for _, a := range assignments {
		perApp[a.ApplicationID]++
		app, err := appRepo.GetByID(ctx, a.ApplicationID)
		require.NoError(t, err)
		assert.Contains(t, []models.Stage{models.StageScreening, models.StageInterview, models.StageOffer}, app.Stage)
	}
	assert.LessOrEqual(t, len(perApp), testSeedConfig.AssignmentCap)
	for appID, n := range perApp {
		assert.LessOrEqual(t, n, 2, "application %s has too many assignments", appID)
	}
}

func TestSeeder_SecondRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	var firstJobID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM jobs WHERE sort_order = 0").Scan(&firstJobID))

	require.NoError(t, seed.New(db, testSeedConfig).SeedIfNeeded(ctx))

	var sameJobID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM jobs WHERE sort_order = 0").Scan(&sameJobID))
	assert.Equal(t, firstJobID, sameJobID, "a populated store must not be reseeded")
}

func TestSeeder_ReseedsWhenApplicationsCleared(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	var firstJobID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM jobs WHERE sort_order = 0").Scan(&firstJobID))

	// Wiping applications re-arms the gate; everything is regenerated.
	require.NoError(t, sqlite.NewApplicationRepo(db).Clear(ctx))
	require.NoError(t, seed.New(db, testSeedConfig).SeedIfNeeded(ctx))

	var newJobID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM jobs WHERE sort_order = 0").Scan(&newJobID))
	assert.NotEqual(t, firstJobID, newJobID)

	appCount, err := sqlite.NewApplicationRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, appCount, int64(0))
}
