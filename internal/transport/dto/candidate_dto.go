// internal/transport/dto/candidate_dto.go
package dto

import (
	"talentflow/internal/models"

	"github.com/google/uuid"
)

// UpdateCandidateRequest defines the structure for partially updating a
// candidate (PATCH). Nil fields are left untouched.
type UpdateCandidateRequest struct {
	ID            uuid.UUID            `json:"-" validate:"required"` // From URL path
	Name          *string              `json:"name,omitempty" validate:"omitempty,min=1"`
	Email         *string              `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string              `json:"phone,omitempty"`
	Location      *string              `json:"location,omitempty"`
	AppliedDate   *string              `json:"appliedDate,omitempty"`
	OverallStatus *string              `json:"overallStatus,omitempty" validate:"omitempty,oneof=active inactive hired"`
	Timeline      *models.TimelineList `json:"timeline,omitempty"`
	Notes         *models.NoteList     `json:"notes,omitempty"`
}

// CandidateJob is a job resolved through a candidate's applications,
// annotated with the application stage and id.
type CandidateJob struct {
	models.Job
	Stage         models.Stage `json:"stage"`
	ApplicationID uuid.UUID    `json:"applicationId"`
}

// CandidateDetailResponse is a candidate plus the jobs they applied to,
// resolved live.
type CandidateDetailResponse struct {
	models.Candidate
	Jobs []CandidateJob `json:"jobs"`
}
