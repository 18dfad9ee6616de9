package integration_tests

import (
	"context"
	"errors"
	"testing"

	"talentflow/internal/models"
	"talentflow/internal/services"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateService_GetCandidateDetail_ResolvesJobs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := seedTestJobs(t, ctx, db, 3)
	candidate := createTestCandidate(t, ctx, db, "Ana Silva", "ana1@example.com")
	createTestApplication(t, ctx, db, candidate, jobs[0], models.StageScreening)
	createTestApplication(t, ctx, db, candidate, jobs[2], models.StageApplied)

	candidateService := services.NewCandidateService(db)

	detail, err := candidateService.GetCandidateDetail(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", detail.Name)
	require.Len(t, detail.Jobs, 2)

	stagesByJob := make(map[uuid.UUID]models.Stage)
	for _, j := range detail.Jobs {
		stagesByJob[j.ID] = j.Stage
	}
	assert.Equal(t, models.StageScreening, stagesByJob[jobs[0].ID])
	assert.Equal(t, models.StageApplied, stagesByJob[jobs[2].ID])
}

func TestCandidateService_GetCandidateDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	candidateService := services.NewCandidateService(db)

	_, err := candidateService.GetCandidateDetail(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestCandidateService_UpdateCandidate_MergesFields(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	candidate := createTestCandidate(t, ctx, db, "Ana Silva", "ana1@example.com")
	candidateService := services.NewCandidateService(db)

	notes := models.NoteList{{ID: "n1", Content: "Strong portfolio @joao", Mentions: []string{"joao"}}}
	updated, err := candidateService.UpdateCandidate(ctx, &dto.UpdateCandidateRequest{
		ID:            candidate.ID,
		OverallStatus: ptrString("hired"),
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "hired", updated.OverallStatus)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, "Strong portfolio @joao", updated.Notes[0].Content)

	// Untouched fields survive the merge.
	assert.Equal(t, "Ana Silva", updated.Name)
	assert.Equal(t, "ana1@example.com", updated.Email)
}

func TestCandidateService_ListCandidates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	createTestCandidate(t, ctx, db, "Ana Silva", "ana1@example.com")
	createTestCandidate(t, ctx, db, "Bruno Costa", "bruno2@example.com")
	candidateService := services.NewCandidateService(db)

	candidates, err := candidateService.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}
