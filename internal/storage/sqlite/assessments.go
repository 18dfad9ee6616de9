// internal/storage/sqlite/assessments.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"talentflow/internal/models"
	"talentflow/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AssessmentRepo implements the storage.AssessmentRepository interface using SQLite.
type AssessmentRepo struct {
	db Querier
}

// NewAssessmentRepo creates a new AssessmentRepo.
func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

// WithTx creates a new AssessmentRepo bound to the transaction.
func (r *AssessmentRepo) WithTx(tx *sql.Tx) storage.AssessmentRepository {
	return &AssessmentRepo{db: tx}
}

var _ storage.AssessmentRepository = (*AssessmentRepo)(nil)

// GetByJobID retrieves the single assessment attached to a job.
func (r *AssessmentRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Assessment, error) {
	query := `SELECT id, job_id, schema FROM assessments WHERE job_id = ?`
	var a models.Assessment
	err := r.db.QueryRowContext(ctx, query, jobID.String()).Scan(&a.ID, &a.JobID, &a.Schema)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning assessment for job %s: %v", jobID, err)
		return nil, fmt.Errorf("failed to get assessment for job %s: %w", jobID, err)
	}
	return &a, nil
}

// List retrieves all assessments.
func (r *AssessmentRepo) List(ctx context.Context) ([]models.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, job_id, schema FROM assessments`)
	if err != nil {
		log.Printf("Error querying assessments: %v", err)
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	assessments := []models.Assessment{}
	for rows.Next() {
		var a models.Assessment
		if err := rows.Scan(&a.ID, &a.JobID, &a.Schema); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

// Create inserts a new assessment.
func (r *AssessmentRepo) Create(ctx context.Context, assessment *models.Assessment) error {
	query := `INSERT INTO assessments (id, job_id, schema) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, assessment.ID, assessment.JobID, assessment.Schema); err != nil {
		log.Printf("Error creating assessment for job %s: %v", assessment.JobID, err)
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// UpdateSchema replaces an existing assessment's schema.
func (r *AssessmentRepo) UpdateSchema(ctx context.Context, id uuid.UUID, schema models.AssessmentSchema) (*models.Assessment, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE assessments SET schema = ? WHERE id = ?`, schema, id.String())
	if err != nil {
		log.Printf("Error updating assessment %s: %v", id, err)
		return nil, fmt.Errorf("failed to update assessment %s: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, storage.ErrNotFound
	}

	var a models.Assessment
	err = r.db.QueryRowContext(ctx, `SELECT id, job_id, schema FROM assessments WHERE id = ?`, id.String()).
		Scan(&a.ID, &a.JobID, &a.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to reload assessment %s: %w", id, err)
	}
	return &a, nil
}

// BulkInsert writes a batch of assessments in a single multi-row INSERT.
func (r *AssessmentRepo) BulkInsert(ctx context.Context, assessments []models.Assessment) error {
	if len(assessments) == 0 {
		return nil
	}
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO assessments (id, job_id, schema) VALUES `)
	args := make([]interface{}, 0, len(assessments)*3)
	for i, a := range assessments {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString("(?, ?, ?)")
		args = append(args, a.ID, a.JobID, a.Schema)
	}
	if _, err := r.db.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		log.Printf("Error bulk inserting %d assessments: %v", len(assessments), err)
		return fmt.Errorf("failed to bulk insert assessments: %w", err)
	}
	return nil
}

// Clear removes every assessment row.
func (r *AssessmentRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessments`); err != nil {
		return fmt.Errorf("failed to clear assessments: %w", err)
	}
	return nil
}
