// internal/transport/dto/assessment_dto.go
package dto

import (
	"talentflow/internal/models"

	"github.com/google/uuid"
)

// UpsertAssessmentRequest creates or replaces the single assessment attached
// to a job. PUT and POST share this shape and behave identically.
type UpsertAssessmentRequest struct {
	JobID  uuid.UUID               `json:"-" validate:"required"` // From URL path
	Schema models.AssessmentSchema `json:"schema" validate:"required"`
}

// SubmitAssessmentRequest records a candidate's completed assessment against
// their application for the job.
type SubmitAssessmentRequest struct {
	JobID       uuid.UUID        `json:"-" validate:"required"` // From URL path
	CandidateID uuid.UUID        `json:"candidateId" validate:"required"`
	Responses   models.AnswerMap `json:"responses"`
}

// SubmitAssessmentResponse returns the updated application alongside a
// confirmation message.
type SubmitAssessmentResponse struct {
	Message string              `json:"message"`
	App     *models.Application `json:"app"`
}
