// internal/transport/dto/application_dto.go
package dto

import (
	"talentflow/internal/models"

	"github.com/google/uuid"
)

// ListApplicationsQuery defines the query parameters for the enriched
// application list. Search matches candidate name, candidate email, and job
// title (all resolved live).
type ListApplicationsQuery struct {
	Search   string `form:"search"`
	Stage    string `form:"stage" validate:"omitempty,oneof=Applied Screening Interview Offer Hired Rejected"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=100"`
}

// UpdateApplicationRequest defines the structure for partially updating an
// application (PATCH, merge semantics). Applying the same partial update twice
// is harmless, so callers may retry or roll back freely.
type UpdateApplicationRequest struct {
	ID               uuid.UUID                    `json:"-" validate:"required"` // From URL path
	Stage            *models.Stage                `json:"stage,omitempty" validate:"omitempty,oneof=Applied Screening Interview Offer Hired Rejected"`
	AssessmentStatus *models.AssessmentStatus     `json:"assessmentStatus,omitempty" validate:"omitempty,oneof=not-started in-progress submitted"`
	Submission       *models.AssessmentSubmission `json:"assessmentSubmission,omitempty"`
	CandidateName    *string                      `json:"candidateName,omitempty"`
	CandidateEmail   *string                      `json:"candidateEmail,omitempty"`
	JobTitle         *string                      `json:"jobTitle,omitempty"`
}

// ApplicationListResponse carries one page of enriched applications plus the
// filtered pre-slice total.
type ApplicationListResponse struct {
	Items []models.Application `json:"items"`
	Total int                  `json:"total"`
}
