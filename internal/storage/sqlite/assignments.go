// internal/storage/sqlite/assignments.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"talentflow/internal/models"
	"talentflow/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AssignmentRepo implements the storage.AssignmentRepository interface using SQLite.
type AssignmentRepo struct {
	db Querier
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// WithTx creates a new AssignmentRepo bound to the transaction.
func (r *AssignmentRepo) WithTx(tx *sql.Tx) storage.AssignmentRepository {
	return &AssignmentRepo{db: tx}
}

var _ storage.AssignmentRepository = (*AssignmentRepo)(nil)

const assignmentColumns = `id, application_id, candidate_id, job_id, assessment_id, title, description,
	type, status, priority, due_date, created_at, updated_at, assigned_to,
	estimated_duration, instructions, evaluation_criteria, score, feedback, attachments, answers`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*models.Assignment, error) {
	var a models.Assignment
	var assessmentID sql.NullString
	var score sql.NullInt64
	var feedback sql.NullString
	err := row.Scan(&a.ID, &a.ApplicationID, &a.CandidateID, &a.JobID, &assessmentID,
		&a.Title, &a.Description, &a.Type, &a.Status, &a.Priority,
		&a.DueDate, &a.CreatedAt, &a.UpdatedAt, &a.AssignedTo,
		&a.EstimatedDuration, &a.Instructions, &a.EvaluationCriteria,
		&score, &feedback, &a.Attachments, &a.Answers)
	if err != nil {
		return nil, err
	}
	if assessmentID.Valid {
		id, err := uuid.Parse(assessmentID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse assessment id: %w", err)
		}
		a.AssessmentID = &id
	}
	if score.Valid {
		v := int(score.Int64)
		a.Score = &v
	}
	if feedback.Valid {
		a.Feedback = &feedback.String
	}
	if a.EvaluationCriteria == nil {
		a.EvaluationCriteria = models.StringList{}
	}
	if a.Attachments == nil {
		a.Attachments = models.AttachmentList{}
	}
	return &a, nil
}

func assignmentArgs(a *models.Assignment) []interface{} {
	var assessmentID interface{}
	if a.AssessmentID != nil {
		assessmentID = a.AssessmentID.String()
	}
	var score interface{}
	if a.Score != nil {
		score = *a.Score
	}
	var feedback interface{}
	if a.Feedback != nil {
		feedback = *a.Feedback
	}
	return []interface{}{
		a.ID, a.ApplicationID, a.CandidateID, a.JobID, assessmentID,
		a.Title, a.Description, a.Type, a.Status, a.Priority,
		a.DueDate, a.CreatedAt, a.UpdatedAt, a.AssignedTo,
		a.EstimatedDuration, a.Instructions, a.EvaluationCriteria,
		score, feedback, a.Attachments, a.Answers,
	}
}

// List retrieves assignments, optionally filtered to one application.
func (r *AssignmentRepo) List(ctx context.Context, applicationID *uuid.UUID) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments`
	var args []interface{}
	if applicationID != nil {
		query += ` WHERE application_id = ?`
		args = append(args, applicationID.String())
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying assignments: %v", err)
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

// GetByApplicationAndAssessment finds the assignment tying an application to
// an assessment, if one exists.
func (r *AssignmentRepo) GetByApplicationAndAssessment(ctx context.Context, applicationID, assessmentID uuid.UUID) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE application_id = ? AND assessment_id = ?`
	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, applicationID.String(), assessmentID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning assignment for application %s: %v", applicationID, err)
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return a, nil
}

// Create inserts a new assignment.
func (r *AssignmentRepo) Create(ctx context.Context, assignment *models.Assignment) error {
	placeholders := "(?" + strings.Repeat(", ?", 20) + ")"
	query := `INSERT INTO assignments (` + assignmentColumns + `) VALUES ` + placeholders
	if _, err := r.db.ExecContext(ctx, query, assignmentArgs(assignment)...); err != nil {
		log.Printf("Error creating assignment for application %s: %v", assignment.ApplicationID, err)
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// MarkCompleted flips an assignment to completed and records the answers.
func (r *AssignmentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, answers models.AnswerMap) error {
	query := `UPDATE assignments SET status = 'completed', answers = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, answers, time.Now().UTC().Format(time.RFC3339), id.String())
	if err != nil {
		log.Printf("Error completing assignment %s: %v", id, err)
		return fmt.Errorf("failed to complete assignment %s: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// BulkInsert writes a batch of assignments in a single multi-row INSERT.
func (r *AssignmentRepo) BulkInsert(ctx context.Context, assignments []models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	rowPlaceholder := "(?" + strings.Repeat(", ?", 20) + ")"
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO assignments (` + assignmentColumns + `) VALUES `)
	args := make([]interface{}, 0, len(assignments)*21)
	for i := range assignments {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString(rowPlaceholder)
		args = append(args, assignmentArgs(&assignments[i])...)
	}
	if _, err := r.db.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		log.Printf("Error bulk inserting %d assignments: %v", len(assignments), err)
		return fmt.Errorf("failed to bulk insert assignments: %w", err)
	}
	return nil
}

// Clear removes every assignment row.
func (r *AssignmentRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	return nil
}
