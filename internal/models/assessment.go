package models

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// --- Question Type Enum ---
type QuestionType string

const (
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

// IsValid reports whether qt is one of the six supported question types.
func (qt QuestionType) IsValid() bool {
	switch qt {
	case QuestionShortText, QuestionLongText, QuestionSingleChoice,
		QuestionMultiChoice, QuestionNumeric, QuestionFileUpload:
		return true
	}
	return false
}

// IsChoice reports whether qt requires an options list.
func (qt QuestionType) IsChoice() bool {
	return qt == QuestionSingleChoice || qt == QuestionMultiChoice
}

// Option is one selectable answer of a choice question.
type Option struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// Conditional gates a question on another question's current answer.
// DependsOn must reference a question in the same section; evaluation is a
// plain equality test against that question's answer.
type Conditional struct {
	DependsOn string      `json:"dependsOn"`
	Value     interface{} `json:"value"`
}

// Question is a single prompt in an assessment section.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Label       string       `json:"label"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options,omitempty"`   // choice types only
	MaxLength   *int         `json:"maxLength,omitempty"`  // text types
	Min         *float64     `json:"min,omitempty"`        // numeric
	Max         *float64     `json:"max,omitempty"`        // numeric
	Conditional *Conditional `json:"conditional,omitempty"`
}

// Section groups questions inside an assessment.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// AssessmentSchema is the structural definition of an assessment's form:
// distinct from the store's own table schema.
type AssessmentSchema struct {
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	EstimatedTime string    `json:"estimatedTime,omitempty"`
	Sections      []Section `json:"sections"`
}

// Value implements the driver.Valuer interface for AssessmentSchema
func (s AssessmentSchema) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements the sql.Scanner interface for AssessmentSchema
func (s *AssessmentSchema) Scan(value interface{}) error {
	return scanJSON(s, value, "AssessmentSchema")
}

// Assessment is the single per-job assessment form definition.
type Assessment struct {
	ID     uuid.UUID        `json:"id" db:"id"`
	JobID  uuid.UUID        `json:"jobId" db:"job_id"`
	Schema AssessmentSchema `json:"schema" db:"schema"`
}
