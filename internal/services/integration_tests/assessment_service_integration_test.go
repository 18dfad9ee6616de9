package integration_tests

import (
	"context"
	"errors"
	"testing"

	"talentflow/internal/models"
	"talentflow/internal/services"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestSchema() models.AssessmentSchema {
	return models.AssessmentSchema{
		Title: "Screening",
		Sections: []models.Section{{
			ID:    "s-1",
			Title: "Basics",
			Questions: []models.Question{
				{
					ID: "q-1", Type: models.QuestionSingleChoice, Label: "Experience?", Required: true,
					Options: []models.Option{{Label: "Junior", Value: "jr"}, {Label: "Senior", Value: "sr"}},
				},
				{
					ID: "q-2", Type: models.QuestionShortText, Label: "Why senior?",
					Conditional: &models.Conditional{DependsOn: "q-1", Value: "sr"},
				},
			},
		}},
	}
}

func TestAssessmentService_Upsert_CreatesThenReplaces(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := seedTestJobs(t, ctx, db, 1)
	assessmentService := services.NewAssessmentService(db)

	created, wasCreated, err := assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{
		JobID: jobs[0].ID, Schema: validTestSchema(),
	})
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, jobs[0].ID, created.JobID)

	// Second upsert replaces the schema but keeps one assessment per job.
	schema := validTestSchema()
	schema.Title = "Screening v2"
	replaced, wasCreated, err := assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{
		JobID: jobs[0].ID, Schema: schema,
	})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "Screening v2", replaced.Schema.Title)

	all, err := assessmentService.ListAssessments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAssessmentService_Upsert_RejectsBadSchemas(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := seedTestJobs(t, ctx, db, 1)
	assessmentService := services.NewAssessmentService(db)

	// Unknown question type.
	schema := validTestSchema()
	schema.Sections[0].Questions[0].Type = "essay"
	_, _, err := assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{JobID: jobs[0].ID, Schema: schema})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	// Choice question without options.
	schema = validTestSchema()
	schema.Sections[0].Questions[0].Options = nil
	_, _, err = assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{JobID: jobs[0].ID, Schema: schema})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	// Conditional pointing at a question outside the section.
	schema = validTestSchema()
	schema.Sections[0].Questions[1].Conditional.DependsOn = "q-99"
	_, _, err = assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{JobID: jobs[0].ID, Schema: schema})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	// Nothing was written.
	_, err = assessmentService.GetAssessmentByJob(ctx, jobs[0].ID)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestAssessmentService_Submit_RecordsSubmissionAndAssignment(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := seedTestJobs(t, ctx, db, 1)
	ana := createTestCandidate(t, ctx, db, "Ana Silva", "ana1@example.com")
	app := createTestApplication(t, ctx, db, ana, jobs[0], models.StageScreening)
	assessmentService := services.NewAssessmentService(db)

	assessment, _, err := assessmentService.UpsertAssessment(ctx, &dto.UpsertAssessmentRequest{
		JobID: jobs[0].ID, Schema: validTestSchema(),
	})
	require.NoError(t, err)

	responses := models.AnswerMap{"q-1": "sr", "q-2": "Led a platform team"}
	updated, err := assessmentService.SubmitAssessment(ctx, &dto.SubmitAssessmentRequest{
		JobID: jobs[0].ID, CandidateID: ana.ID, Responses: responses,
	})
	require.NoError(t, err)
	assert.Equal(t, app.ID, updated.ID)
	assert.Equal(t, models.AssessmentSubmitted, updated.AssessmentStatus)
	require.NotNil(t, updated.Submission)
	assert.NotEmpty(t, updated.Submission.SubmittedAt)
	assert.Equal(t, "sr", updated.Submission.Responses["q-1"])

	// A completed assignment carrying the answers is recorded alongside.
	assignments, err := sqlite.NewAssignmentRepo(db).List(ctx, &app.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "completed", assignments[0].Status)
	require.NotNil(t, assignments[0].AssessmentID)
	assert.Equal(t, assessment.ID, *assignments[0].AssessmentID)
	assert.Equal(t, "Led a platform team", assignments[0].Answers["q-2"])

	// Submitting again completes the same assignment instead of adding one.
	_, err = assessmentService.SubmitAssessment(ctx, &dto.SubmitAssessmentRequest{
		JobID: jobs[0].ID, CandidateID: ana.ID, Responses: responses,
	})
	require.NoError(t, err)
	assignments, err = sqlite.NewAssignmentRepo(db).List(ctx, &app.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestAssessmentService_Submit_NoApplicationIs404(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := seedTestJobs(t, ctx, db, 1)
	assessmentService := services.NewAssessmentService(db)

	_, err := assessmentService.SubmitAssessment(ctx, &dto.SubmitAssessmentRequest{
		JobID: jobs[0].ID, CandidateID: uuid.New(), Responses: models.AnswerMap{},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
