package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusArchived:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Stage Enum ---
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
	StageRejected  Stage = "Rejected"
)

// Stages lists every hiring-funnel stage in pipeline order.
var Stages = []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected}

// Scan implements the sql.Scanner interface for Stage
func (s *Stage) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Stage: value is not string or []byte")
		}
	}
	v := Stage(strVal)
	switch v {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid Stage value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Stage
func (s Stage) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Assessment Status Enum ---
type AssessmentStatus string

const (
	AssessmentNotStarted AssessmentStatus = "not-started"
	AssessmentInProgress AssessmentStatus = "in-progress"
	AssessmentSubmitted  AssessmentStatus = "submitted"
)

// Scan implements the sql.Scanner interface for AssessmentStatus
func (as *AssessmentStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan AssessmentStatus: value is not string or []byte")
		}
	}
	v := AssessmentStatus(strVal)
	switch v {
	case AssessmentNotStarted, AssessmentInProgress, AssessmentSubmitted:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid AssessmentStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for AssessmentStatus
func (as AssessmentStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// Job represents a job posting in the hiring pipeline.
type Job struct {
	ID     uuid.UUID  `json:"id" db:"id"`
	Title  string     `json:"title" db:"title"`
	Slug   string     `json:"slug" db:"slug"` // Globally unique, derived from title if absent
	Status JobStatus  `json:"status" db:"status"`
	Tags   StringList `json:"tags" db:"tags"`
	Order  int        `json:"order" db:"sort_order"` // Dense ordering index; "order" is reserved in SQL
}

// Note is a free-text note attached to a candidate, with @mentions extracted
// by the caller.
type Note struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Author    string   `json:"author,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Mentions  []string `json:"mentions,omitempty"`
}

// TimelineEvent records a dated event on a candidate's history. Stored but not
// interpreted by any handler.
type TimelineEvent struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	Date  string `json:"date"`
}

// Candidate represents a person in the hiring pipeline. Candidates are created
// only by the seeder; there is no create endpoint.
type Candidate struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Email         string       `json:"email" db:"email"`
	Phone         string       `json:"phone" db:"phone"`
	Location      string       `json:"location" db:"location"`
	AppliedDate   string       `json:"appliedDate" db:"applied_date"` // Date-only, YYYY-MM-DD
	OverallStatus string       `json:"overallStatus" db:"overall_status"`
	Timeline      TimelineList `json:"timeline" db:"timeline"`
	Notes         NoteList     `json:"notes" db:"notes"`
}

// Application links a Candidate to a Job. The candidateName/candidateEmail/
// jobTitle fields are snapshots taken at creation time; list responses resolve
// them again by live lookup and may differ after edits.
type Application struct {
	ID               uuid.UUID             `json:"id" db:"id"`
	CandidateID      uuid.UUID             `json:"candidateId" db:"candidate_id"`
	JobID            uuid.UUID             `json:"jobId" db:"job_id"`
	Stage            Stage                 `json:"stage" db:"stage"`
	CandidateName    string                `json:"candidateName" db:"candidate_name"`
	CandidateEmail   string                `json:"candidateEmail" db:"candidate_email"`
	JobTitle         string                `json:"jobTitle" db:"job_title"`
	AssessmentStatus AssessmentStatus      `json:"assessmentStatus" db:"assessment_status"`
	Submission       *AssessmentSubmission `json:"assessmentSubmission,omitempty" db:"assessment_submission"`
}

// AssessmentSubmission is the embedded record of a candidate's assessment
// progress on an Application. SubmittedAt is set for submitted assessments,
// StartedAt for in-progress ones.
type AssessmentSubmission struct {
	SubmittedAt string    `json:"submittedAt,omitempty"`
	StartedAt   string    `json:"startedAt,omitempty"`
	Responses   AnswerMap `json:"responses"`
}

// Value implements the driver.Valuer interface for AssessmentSubmission
func (s *AssessmentSubmission) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return jsonValue(s)
}

// Scan implements the sql.Scanner interface for AssessmentSubmission
func (s *AssessmentSubmission) Scan(value interface{}) error {
	return scanJSON(s, value, "AssessmentSubmission")
}

// Attachment is a file reference on an Assignment.
type Attachment struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// Assignment is a durable work item tied to an Application (technical
// screening, code review, ...). After a candidate submits an assessment the
// completed Assignment also carries the answers, making it the unified record
// of assessment completion alongside the Application's embedded submission.
type Assignment struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	ApplicationID      uuid.UUID      `json:"applicationId" db:"application_id"`
	CandidateID        uuid.UUID      `json:"candidateId" db:"candidate_id"`
	JobID              uuid.UUID      `json:"jobId" db:"job_id"`
	AssessmentID       *uuid.UUID     `json:"assessmentId,omitempty" db:"assessment_id"`
	Title              string         `json:"title" db:"title"`
	Description        string         `json:"description" db:"description"`
	Type               string         `json:"type" db:"type"`
	Status             string         `json:"status" db:"status"`
	Priority           string         `json:"priority" db:"priority"`
	DueDate            string         `json:"dueDate" db:"due_date"`
	CreatedAt          string         `json:"createdAt" db:"created_at"`
	UpdatedAt          string         `json:"updatedAt" db:"updated_at"`
	AssignedTo         string         `json:"assignedTo" db:"assigned_to"`
	EstimatedDuration  int            `json:"estimatedDuration" db:"estimated_duration"` // minutes
	Instructions       string         `json:"instructions" db:"instructions"`
	EvaluationCriteria StringList     `json:"evaluationCriteria" db:"evaluation_criteria"`
	Score              *int           `json:"score" db:"score"`
	Feedback           *string        `json:"feedback" db:"feedback"`
	Attachments        AttachmentList `json:"attachments" db:"attachments"`
	Answers            AnswerMap      `json:"answers,omitempty" db:"answers"`
}

// --- JSON column wrappers ---
//
// Set/object fields are persisted as JSON TEXT columns. Each wrapper
// implements sql.Scanner and driver.Valuer so repositories can scan them like
// plain columns, the same way the enums above do.

// StringList is a JSON-encoded list of strings (tags, evaluation criteria).
type StringList []string

func (l *StringList) Scan(value interface{}) error { return scanJSON(l, value, "StringList") }
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

// NoteList is a JSON-encoded list of candidate notes.
type NoteList []Note

func (l *NoteList) Scan(value interface{}) error { return scanJSON(l, value, "NoteList") }
func (l NoteList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

// TimelineList is a JSON-encoded list of candidate timeline events.
type TimelineList []TimelineEvent

func (l *TimelineList) Scan(value interface{}) error { return scanJSON(l, value, "TimelineList") }
func (l TimelineList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

// AttachmentList is a JSON-encoded list of assignment attachments.
type AttachmentList []Attachment

func (l *AttachmentList) Scan(value interface{}) error { return scanJSON(l, value, "AttachmentList") }
func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

// AnswerMap maps question ids to answers. Answers are free-form: strings,
// option lists, or numbers depending on the question type.
type AnswerMap map[string]interface{}

func (m *AnswerMap) Scan(value interface{}) error { return scanJSON(m, value, "AnswerMap") }
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(m)
}

func scanJSON(dest interface{}, value interface{}, typeName string) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
