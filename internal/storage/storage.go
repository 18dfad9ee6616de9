package storage

import (
	"context"
	"database/sql"

	"talentflow/internal/models"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	WithTx(tx *sql.Tx) JobRepository
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)
	// List applies search/status filters and sorting; tag filtering and
	// pagination happen in the service on the returned rows.
	List(ctx context.Context, req *dto.ListJobsQuery) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	// ShiftOrders adds delta to the order of every job (except exceptID)
	// whose order lies in the inclusive range [lo, hi].
	ShiftOrders(ctx context.Context, exceptID uuid.UUID, lo, hi, delta int) error
	MaxOrder(ctx context.Context) (int, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[models.JobStatus]int, error)
	BulkInsert(ctx context.Context, jobs []models.Job) error
	Clear(ctx context.Context) error
}

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	WithTx(tx *sql.Tx) CandidateRepository
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	List(ctx context.Context) ([]models.Candidate, error)
	Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, candidates []models.Candidate) error
	Clear(ctx context.Context) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	WithTx(tx *sql.Tx) ApplicationRepository
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// ListEnriched resolves candidate/job display fields by live lookup,
	// silently dropping applications whose candidate or job no longer
	// exists, and returns the page slice plus the pre-slice total.
	ListEnriched(ctx context.Context, req *dto.ListApplicationsQuery) ([]models.Application, int, error)
	// ListCandidatesForJob joins a job's applications to the live candidate
	// rows, attaching stage and application id.
	ListCandidatesForJob(ctx context.Context, jobID uuid.UUID) ([]dto.JobCandidate, error)
	// ListJobsForCandidate joins a candidate's applications to the live job
	// rows, attaching stage and application id.
	ListJobsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]dto.CandidateJob, error)
	FindByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (*models.Application, error)
	Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Count(ctx context.Context) (int64, error)
	CountByStage(ctx context.Context) (map[models.Stage]int, error)
	BulkInsert(ctx context.Context, apps []models.Application) error
	Clear(ctx context.Context) error
}

// AssessmentRepository defines the interface for assessment data operations.
type AssessmentRepository interface {
	WithTx(tx *sql.Tx) AssessmentRepository
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Assessment, error)
	List(ctx context.Context) ([]models.Assessment, error)
	Create(ctx context.Context, assessment *models.Assessment) error
	UpdateSchema(ctx context.Context, id uuid.UUID, schema models.AssessmentSchema) (*models.Assessment, error)
	BulkInsert(ctx context.Context, assessments []models.Assessment) error
	Clear(ctx context.Context) error
}

// AssignmentRepository defines the interface for assignment data operations.
type AssignmentRepository interface {
	WithTx(tx *sql.Tx) AssignmentRepository
	List(ctx context.Context, applicationID *uuid.UUID) ([]models.Assignment, error)
	GetByApplicationAndAssessment(ctx context.Context, applicationID, assessmentID uuid.UUID) (*models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	// MarkCompleted sets status to completed and stores the submitted answers.
	MarkCompleted(ctx context.Context, id uuid.UUID, answers models.AnswerMap) error
	BulkInsert(ctx context.Context, assignments []models.Assignment) error
	Clear(ctx context.Context) error
}
