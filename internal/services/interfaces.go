package services

import (
	"context"

	"talentflow/internal/models"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
)

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobDetail(ctx context.Context, id uuid.UUID) (*dto.JobDetailResponse, error)
	ListJobs(ctx context.Context, req *dto.ListJobsQuery) (*dto.JobListResponse, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	ReplaceJob(ctx context.Context, req *dto.ReplaceJobRequest) (*models.Job, error)
	ReorderJob(ctx context.Context, id uuid.UUID, fromOrder, toOrder int) error
}

// CandidateService defines the interface for candidate-related business logic.
type CandidateService interface {
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	GetCandidateDetail(ctx context.Context, id uuid.UUID) (*dto.CandidateDetailResponse, error)
	UpdateCandidate(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
}

// ApplicationService defines the interface for application-related business logic.
type ApplicationService interface {
	ListApplications(ctx context.Context, req *dto.ListApplicationsQuery) (*dto.ApplicationListResponse, error)
	UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error)
}

// AssessmentService defines the interface for assessment-related business logic.
type AssessmentService interface {
	GetAssessmentByJob(ctx context.Context, jobID uuid.UUID) (*models.Assessment, error)
	ListAssessments(ctx context.Context) ([]models.Assessment, error)
	// UpsertAssessment creates or replaces the single assessment for a job.
	// The bool result reports whether a new row was created.
	UpsertAssessment(ctx context.Context, req *dto.UpsertAssessmentRequest) (*models.Assessment, bool, error)
	SubmitAssessment(ctx context.Context, req *dto.SubmitAssessmentRequest) (*models.Application, error)
}

// AssignmentService defines the interface for assignment-related business logic.
type AssignmentService interface {
	ListAssignments(ctx context.Context, applicationID *uuid.UUID) ([]models.Assignment, error)
}

// StatsService defines the interface for the aggregate stats endpoint.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}
