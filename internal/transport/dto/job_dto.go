// internal/transport/dto/job_dto.go
package dto

import (
	"talentflow/internal/models" // Import models for enums

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// Slug is derived from the title when absent; order defaults to max+1.
type CreateJobRequest struct {
	Title  string   `json:"title" validate:"required"`
	Slug   string   `json:"slug,omitempty"`
	Status string   `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	Tags   []string `json:"tags,omitempty"`
	Order  *int     `json:"order,omitempty"`
}

// UpdateJobRequest defines the structure for partially updating a job (PATCH).
type UpdateJobRequest struct {
	ID     uuid.UUID         `json:"-" validate:"required"` // From URL path
	Title  *string           `json:"title,omitempty" validate:"omitempty,min=1"`
	Slug   *string           `json:"slug,omitempty" validate:"omitempty,min=1"`
	Status *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	Tags   *[]string         `json:"tags,omitempty"`
	Order  *int              `json:"order,omitempty"`
}

// ReplaceJobRequest defines the structure for a full job replace (PUT).
type ReplaceJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From URL path
	Title  string    `json:"title" validate:"required"`
	Slug   string    `json:"slug" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=active archived"`
	Tags   []string  `json:"tags"`
	Order  int       `json:"order"`
}

// ListJobsQuery defines the query parameters for listing jobs.
type ListJobsQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status" validate:"omitempty,oneof=active archived"`
	Tags     string `form:"tags"` // comma-separated, any-match
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	Sort     string `form:"sort,default=order" validate:"omitempty,oneof=order title"`
}

// ReorderJobRequest moves a job from its current order to a new one.
// FromOrder must match the job's stored order, guarding against stale state.
type ReorderJobRequest struct {
	FromOrder *int `json:"fromOrder" validate:"required"`
	ToOrder   *int `json:"toOrder" validate:"required"`
}

// --- Job Response DTOs ---

// JobListResponse carries one page of jobs plus the filtered pre-slice total.
type JobListResponse struct {
	Items []models.Job `json:"items"`
	Total int          `json:"total"`
}

// JobCandidate is a candidate resolved through a job's applications,
// annotated with the application stage and id.
type JobCandidate struct {
	models.Candidate
	Stage         models.Stage `json:"stage"`
	ApplicationID uuid.UUID    `json:"applicationId"`
}

// JobDetailResponse is a job plus its applicants resolved live.
type JobDetailResponse struct {
	models.Job
	Candidates []JobCandidate `json:"candidates"`
}

// ReorderJobResponse echoes the applied move.
type ReorderJobResponse struct {
	FromOrder int `json:"fromOrder"`
	ToOrder   int `json:"toOrder"`
}
