package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type assessmentService struct {
	assessmentRepo storage.AssessmentRepository
	appRepo        storage.ApplicationRepository
	assignmentRepo storage.AssignmentRepository
}

// NewAssessmentService creates a new instance of AssessmentService.
func NewAssessmentService(db *sql.DB) AssessmentService {
	return &assessmentService{
		assessmentRepo: sqlite.NewAssessmentRepo(db),
		appRepo:        sqlite.NewApplicationRepo(db),
		assignmentRepo: sqlite.NewAssignmentRepo(db),
	}
}

func (s *assessmentService) GetAssessmentByJob(ctx context.Context, jobID uuid.UUID) (*models.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "getting assessment by job")
	}
	return assessment, nil
}

func (s *assessmentService) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	assessments, err := s.assessmentRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing assessments")
	}
	return assessments, nil
}

// UpsertAssessment creates or replaces the single assessment per job; PUT and
// POST share this path. The returned bool reports whether a row was created.
func (s *assessmentService) UpsertAssessment(ctx context.Context, req *dto.UpsertAssessmentRequest) (*models.Assessment, bool, error) {
	if err := validateSchema(&req.Schema); err != nil {
		return nil, false, err
	}

	existing, err := s.assessmentRepo.GetByJobID(ctx, req.JobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, false, mapRepoError(err, "looking up assessment for upsert")
	}

	if existing != nil {
		updated, err := s.assessmentRepo.UpdateSchema(ctx, existing.ID, req.Schema)
		if err != nil {
			return nil, false, mapRepoError(err, "updating assessment schema")
		}
		return updated, false, nil
	}

	assessment := &models.Assessment{ID: uuid.New(), JobID: req.JobID, Schema: req.Schema}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, false, mapRepoError(err, "creating assessment")
	}
	log.Printf("Assessment created for job %s", req.JobID)
	return assessment, true, nil
}

// validateSchema enforces the structural rules of an assessment form: known
// question types, options on choice questions, and conditionals referencing
// another question of the same section.
func validateSchema(schema *models.AssessmentSchema) error {
	for _, section := range schema.Sections {
		ids := make(map[string]bool, len(section.Questions))
		for _, q := range section.Questions {
			ids[q.ID] = true
		}
		for _, q := range section.Questions {
			if !q.Type.IsValid() {
				return fmt.Errorf("%w: unknown question type %q", ErrValidation, q.Type)
			}
			if q.Type.IsChoice() && len(q.Options) == 0 {
				return fmt.Errorf("%w: question %q of type %s has no options", ErrValidation, q.Label, q.Type)
			}
			if q.Conditional != nil {
				if q.Conditional.DependsOn == q.ID || !ids[q.Conditional.DependsOn] {
					return fmt.Errorf("%w: question %q depends on unknown question %q in section %q",
						ErrValidation, q.Label, q.Conditional.DependsOn, section.Title)
				}
			}
		}
	}
	return nil
}

// SubmitAssessment records a candidate's completed assessment on their
// application for the job, and keeps the matching assignment in sync as the
// unified completion record.
func (s *assessmentService) SubmitAssessment(ctx context.Context, req *dto.SubmitAssessmentRequest) (*models.Application, error) {
	app, err := s.appRepo.FindByCandidateAndJob(ctx, req.CandidateID, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "finding application for submission")
	}

	submitted := models.AssessmentSubmitted
	submission := &models.AssessmentSubmission{
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Responses:   req.Responses,
	}
	updated, err := s.appRepo.Update(ctx, &dto.UpdateApplicationRequest{
		ID:               app.ID,
		AssessmentStatus: &submitted,
		Submission:       submission,
	})
	if err != nil {
		return nil, mapRepoError(err, "recording assessment submission")
	}

	s.syncAssignment(ctx, updated, req.Responses)

	log.Printf("Assessment submitted: candidate %s, job %s", req.CandidateID, req.JobID)
	return updated, nil
}

// syncAssignment completes (or creates) the assignment tied to the job's
// assessment. Failures here are logged, not surfaced: the application update
// above is the authoritative write.
func (s *assessmentService) syncAssignment(ctx context.Context, app *models.Application, answers models.AnswerMap) {
	assessment, err := s.assessmentRepo.GetByJobID(ctx, app.JobID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Error resolving assessment for assignment sync: %v", err)
		}
		return
	}

	existing, err := s.assignmentRepo.GetByApplicationAndAssessment(ctx, app.ID, assessment.ID)
	if err == nil {
		if err := s.assignmentRepo.MarkCompleted(ctx, existing.ID, answers); err != nil {
			log.Printf("Error completing assignment %s: %v", existing.ID, err)
		}
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Error looking up assignment for sync: %v", err)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	assessmentID := assessment.ID
	assignment := &models.Assignment{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		CandidateID:   app.CandidateID,
		JobID:         app.JobID,
		AssessmentID:  &assessmentID,
		Title:         assessment.Schema.Title,
		Type:          "Assessment",
		Status:        "completed",
		Priority:      "medium",
		CreatedAt:     now,
		UpdatedAt:     now,
		Answers:       answers,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		log.Printf("Error creating completion assignment: %v", err)
	}
}
