// internal/storage/sqlite/applications.go
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using SQLite.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx *sql.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = "id, candidate_id, job_id, stage, candidate_name, candidate_email, job_title, assessment_status, assessment_submission"

func scanApplication(row interface{ Scan(...interface{}) error }) (*models.Application, error) {
	var a models.Application
	var submission sql.NullString
	err := row.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.Stage,
		&a.CandidateName, &a.CandidateEmail, &a.JobTitle,
		&a.AssessmentStatus, &submission)
	if err != nil {
		return nil, err
	}
	if submission.Valid && submission.String != "" {
		var sub models.AssessmentSubmission
		if err := json.Unmarshal([]byte(submission.String), &sub); err != nil {
			return nil, fmt.Errorf("failed to decode assessment submission: %w", err)
		}
		a.Submission = &sub
	}
	return &a, nil
}

// GetByID retrieves a specific application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return a, nil
}

// ListEnriched returns one page of applications with candidateName,
// candidateEmail and jobTitle resolved by live lookup. The INNER JOINs drop
// applications whose candidate or job no longer exists. The returned total is
// the filtered count before pagination.
func (r *ApplicationRepo) ListEnriched(ctx context.Context, req *dto.ListApplicationsQuery) ([]models.Application, int, error) {
	fromClause := `
		FROM applications a
		INNER JOIN candidates c ON c.id = a.candidate_id
		INNER JOIN jobs j ON j.id = a.job_id
	`
	var conditions []string
	var args []interface{}
	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		conditions = append(conditions, "(LOWER(c.name) LIKE ? OR LOWER(c.email) LIKE ? OR LOWER(j.title) LIKE ?)")
		args = append(args, term, term, term)
	}
	if req.Stage != "" {
		conditions = append(conditions, "a.stage = ?")
		args = append(args, req.Stage)
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*)` + fromClause + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("Error counting enriched applications: %v", err)
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT a.id, a.candidate_id, a.job_id, a.stage,
		       c.name, c.email, j.title,
		       a.assessment_status, a.assessment_submission` +
		fromClause + whereClause + `
		ORDER BY a.id
		LIMIT ? OFFSET ?`
	pageArgs := append(append([]interface{}{}, args...), req.PageSize, (req.Page-1)*req.PageSize)

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		log.Printf("Error querying enriched applications: %v", err)
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate application rows: %w", err)
	}
	return apps, total, nil
}

// ListCandidatesForJob resolves a job's applicants against the live candidate
// table; applications pointing at deleted candidates are dropped by the JOIN.
func (r *ApplicationRepo) ListCandidatesForJob(ctx context.Context, jobID uuid.UUID) ([]dto.JobCandidate, error) {
	query := `
		SELECT c.id, c.name, c.email, c.phone, c.location, c.applied_date,
		       c.overall_status, c.timeline, c.notes, a.stage, a.id
		FROM applications a
		INNER JOIN candidates c ON c.id = a.candidate_id
		WHERE a.job_id = ?`
	rows, err := r.db.QueryContext(ctx, query, jobID.String())
	if err != nil {
		log.Printf("Error querying candidates for job %s: %v", jobID, err)
		return nil, fmt.Errorf("failed to query candidates for job: %w", err)
	}
	defer rows.Close()

	result := []dto.JobCandidate{}
	for rows.Next() {
		var jc dto.JobCandidate
		err := rows.Scan(&jc.ID, &jc.Name, &jc.Email, &jc.Phone, &jc.Location,
			&jc.AppliedDate, &jc.OverallStatus, &jc.Timeline, &jc.Notes,
			&jc.Stage, &jc.ApplicationID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job candidate row: %w", err)
		}
		if jc.Timeline == nil {
			jc.Timeline = models.TimelineList{}
		}
		if jc.Notes == nil {
			jc.Notes = models.NoteList{}
		}
		result = append(result, jc)
	}
	return result, rows.Err()
}

// ListJobsForCandidate resolves the jobs a candidate applied to against the
// live job table; applications pointing at deleted jobs are dropped.
func (r *ApplicationRepo) ListJobsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]dto.CandidateJob, error) {
	query := `
		SELECT j.id, j.title, j.slug, j.status, j.tags, j.sort_order, a.stage, a.id
		FROM applications a
		INNER JOIN jobs j ON j.id = a.job_id
		WHERE a.candidate_id = ?`
	rows, err := r.db.QueryContext(ctx, query, candidateID.String())
	if err != nil {
		log.Printf("Error querying jobs for candidate %s: %v", candidateID, err)
		return nil, fmt.Errorf("failed to query jobs for candidate: %w", err)
	}
	defer rows.Close()

	result := []dto.CandidateJob{}
	for rows.Next() {
		var cj dto.CandidateJob
		err := rows.Scan(&cj.ID, &cj.Title, &cj.Slug, &cj.Status, &cj.Tags,
			&cj.Order, &cj.Stage, &cj.ApplicationID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate job row: %w", err)
		}
		if cj.Tags == nil {
			cj.Tags = models.StringList{}
		}
		result = append(result, cj)
	}
	return result, rows.Err()
}

// FindByCandidateAndJob locates the application linking a candidate to a job.
func (r *ApplicationRepo) FindByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE candidate_id = ? AND job_id = ?`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, candidateID.String(), jobID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application for candidate %s job %s: %v", candidateID, jobID, err)
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return a, nil
}

// Update modifies an existing application based on non-nil fields in the
// request DTO (merge semantics).
func (r *ApplicationRepo) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	var setClauses []string
	args := []interface{}{}

	if req.Stage != nil {
		setClauses = append(setClauses, "stage = ?")
		args = append(args, *req.Stage)
	}
	if req.AssessmentStatus != nil {
		setClauses = append(setClauses, "assessment_status = ?")
		args = append(args, *req.AssessmentStatus)
	}
	if req.Submission != nil {
		setClauses = append(setClauses, "assessment_submission = ?")
		args = append(args, req.Submission)
	}
	if req.CandidateName != nil {
		setClauses = append(setClauses, "candidate_name = ?")
		args = append(args, *req.CandidateName)
	}
	if req.CandidateEmail != nil {
		setClauses = append(setClauses, "candidate_email = ?")
		args = append(args, *req.CandidateEmail)
	}
	if req.JobTitle != nil {
		setClauses = append(setClauses, "job_title = ?")
		args = append(args, *req.JobTitle)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID.String())
	query := fmt.Sprintf(`UPDATE applications SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating application %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update application %s: %w", req.ID, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// Count returns the number of applications. This is the seed gate's source of
// truth for "needs seeding".
func (r *ApplicationRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountByStage returns application counts keyed by stage.
func (r *ApplicationRepo) CountByStage(ctx context.Context) (map[models.Stage]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT stage, COUNT(*) FROM applications GROUP BY stage`)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by stage: %w", err)
	}
	defer rows.Close()

	counts := map[models.Stage]int{}
	for rows.Next() {
		var stage models.Stage
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count: %w", err)
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}

// BulkInsert writes a batch of applications in a single multi-row INSERT.
func (r *ApplicationRepo) BulkInsert(ctx context.Context, apps []models.Application) error {
	if len(apps) == 0 {
		return nil
	}
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO applications (` + applicationColumns + `) VALUES `)
	args := make([]interface{}, 0, len(apps)*9)
	for i, a := range apps {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args, a.ID, a.CandidateID, a.JobID, a.Stage,
			a.CandidateName, a.CandidateEmail, a.JobTitle, a.AssessmentStatus, a.Submission)
	}
	if _, err := r.db.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		log.Printf("Error bulk inserting %d applications: %v", len(apps), err)
		return fmt.Errorf("failed to bulk insert applications: %w", err)
	}
	return nil
}

// Clear removes every application row.
func (r *ApplicationRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM applications`); err != nil {
		return fmt.Errorf("failed to clear applications: %w", err)
	}
	return nil
}
