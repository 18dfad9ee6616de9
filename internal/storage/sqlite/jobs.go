// internal/storage/sqlite/jobs.go
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings" // For building SQL queries

	"context"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// JobRepo implements the storage.JobRepository interface using SQLite.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx *sql.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = "id, title, slug, status, tags, sort_order"

func scanJob(row interface{ Scan(...interface{}) error }) (*models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Title, &job.Slug, &job.Status, &job.Tags, &job.Order)
	if err != nil {
		return nil, err
	}
	if job.Tags == nil {
		job.Tags = models.StringList{}
	}
	return &job, nil
}

// Create inserts a new job posting. A UNIQUE violation on slug maps to
// storage.ErrConflict.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Title, job.Slug, job.Status, job.Tags, job.Order,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			log.Printf("Error creating job: duplicate slug %q: %v", job.Slug, err)
			return fmt.Errorf("failed to create job: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v", err)
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	job, err := scanJob(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

// GetBySlug retrieves a job by its unique slug.
func (r *JobRepo) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = ?`
	job, err := scanJob(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by slug %q: %v", slug, err)
		return nil, fmt.Errorf("failed to get job by slug %q: %w", slug, err)
	}
	return job, nil
}

// List retrieves jobs filtered by search/status and sorted. Tag filtering and
// pagination are applied by the service on the returned rows.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsQuery) ([]models.Job, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + jobColumns + ` FROM jobs`)

	var conditions []string
	var args []interface{}
	if req.Search != "" {
		conditions = append(conditions, "LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(req.Search)+"%")
	}
	if req.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, req.Status)
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	if req.Sort == "title" {
		queryBuilder.WriteString(" ORDER BY title COLLATE NOCASE ASC")
	} else {
		queryBuilder.WriteString(" ORDER BY sort_order ASC")
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		log.Printf("Error querying jobs: %v", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Printf("Error scanning job row: %v", err)
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}
	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}

	// Build SET clauses dynamically
	if req.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Slug != nil {
		setClauses = append(setClauses, "slug = ?")
		args = append(args, *req.Slug)
	}
	if req.Status != nil {
		setClauses = append(setClauses, "status = ?")
		args = append(args, *req.Status)
	}
	if req.Tags != nil {
		setClauses = append(setClauses, "tags = ?")
		args = append(args, models.StringList(*req.Tags))
	}
	if req.Order != nil {
		setClauses = append(setClauses, "sort_order = ?")
		args = append(args, *req.Order)
	}

	if len(setClauses) == 0 {
		// No-op PATCH: return the current row unchanged.
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID.String())
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			log.Printf("Error updating job %s: duplicate slug: %v", req.ID, err)
			return nil, fmt.Errorf("failed to update job: %w", storage.ErrConflict)
		}
		log.Printf("Error updating job %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// UpdateOrder sets a single job's order index.
func (r *JobRepo) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET sort_order = ? WHERE id = ?`, order, id.String())
	if err != nil {
		log.Printf("Error updating order for job %s: %v", id, err)
		return fmt.Errorf("failed to update job order: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ShiftOrders adds delta to the order of every job except exceptID whose
// order lies in [lo, hi]. Callers run it inside a transaction together with
// the moved job's own update so readers never see a partially shifted list.
func (r *JobRepo) ShiftOrders(ctx context.Context, exceptID uuid.UUID, lo, hi, delta int) error {
	query := `UPDATE jobs SET sort_order = sort_order + ? WHERE id != ? AND sort_order >= ? AND sort_order <= ?`
	if _, err := r.db.ExecContext(ctx, query, delta, exceptID.String(), lo, hi); err != nil {
		log.Printf("Error shifting job orders [%d,%d] by %d: %v", lo, hi, delta, err)
		return fmt.Errorf("failed to shift job orders: %w", err)
	}
	return nil
}

// MaxOrder returns the highest order value, or 0 for an empty table.
func (r *JobRepo) MaxOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sort_order), 0) FROM jobs`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max job order: %w", err)
	}
	return max, nil
}

// Count returns the number of jobs.
func (r *JobRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// CountByStatus returns job counts keyed by status.
func (r *JobRepo) CountByStatus(ctx context.Context) (map[models.JobStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}
	defer rows.Close()

	counts := map[models.JobStatus]int{}
	for rows.Next() {
		var status models.JobStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan job status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// BulkInsert writes a batch of jobs in a single multi-row INSERT.
func (r *JobRepo) BulkInsert(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO jobs (` + jobColumns + `) VALUES `)
	args := make([]interface{}, 0, len(jobs)*6)
	for i, job := range jobs {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString("(?, ?, ?, ?, ?, ?)")
		args = append(args, job.ID, job.Title, job.Slug, job.Status, job.Tags, job.Order)
	}
	if _, err := r.db.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		log.Printf("Error bulk inserting %d jobs: %v", len(jobs), err)
		return fmt.Errorf("failed to bulk insert jobs: %w", err)
	}
	return nil
}

// Clear removes every job row. Used by the seeder before repopulating.
func (r *JobRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("failed to clear jobs: %w", err)
	}
	return nil
}
