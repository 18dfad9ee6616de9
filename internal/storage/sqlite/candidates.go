// internal/storage/sqlite/candidates.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CandidateRepo implements the storage.CandidateRepository interface using SQLite.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *sql.DB) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// WithTx creates a new CandidateRepo bound to the transaction.
func (r *CandidateRepo) WithTx(tx *sql.Tx) storage.CandidateRepository {
	return &CandidateRepo{db: tx}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

const candidateColumns = "id, name, email, phone, location, applied_date, overall_status, timeline, notes"

func scanCandidate(row interface{ Scan(...interface{}) error }) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location,
		&c.AppliedDate, &c.OverallStatus, &c.Timeline, &c.Notes)
	if err != nil {
		return nil, err
	}
	if c.Timeline == nil {
		c.Timeline = models.TimelineList{}
	}
	if c.Notes == nil {
		c.Notes = models.NoteList{}
	}
	return &c, nil
}

// GetByID retrieves a specific candidate by ID.
func (r *CandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = ?`
	c, err := scanCandidate(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning candidate by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get candidate by ID %s: %w", id, err)
	}
	return c, nil
}

// List retrieves the full, unpaginated candidate table.
func (r *CandidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error querying candidates: %v", err)
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// Update modifies an existing candidate based on non-nil fields in the
// request DTO (merge semantics).
func (r *CandidateRepo) Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	var setClauses []string
	args := []interface{}{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *req.Email)
	}
	if req.Phone != nil {
		setClauses = append(setClauses, "phone = ?")
		args = append(args, *req.Phone)
	}
	if req.Location != nil {
		setClauses = append(setClauses, "location = ?")
		args = append(args, *req.Location)
	}
	if req.AppliedDate != nil {
		setClauses = append(setClauses, "applied_date = ?")
		args = append(args, *req.AppliedDate)
	}
	if req.OverallStatus != nil {
		setClauses = append(setClauses, "overall_status = ?")
		args = append(args, *req.OverallStatus)
	}
	if req.Timeline != nil {
		setClauses = append(setClauses, "timeline = ?")
		args = append(args, *req.Timeline)
	}
	if req.Notes != nil {
		setClauses = append(setClauses, "notes = ?")
		args = append(args, *req.Notes)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID.String())
	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating candidate %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update candidate %s: %w", req.ID, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// Count returns the number of candidates.
func (r *CandidateRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

// BulkInsert writes a batch of candidates in a single multi-row INSERT.
func (r *CandidateRepo) BulkInsert(ctx context.Context, candidates []models.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO candidates (` + candidateColumns + `) VALUES `)
	args := make([]interface{}, 0, len(candidates)*9)
	for i, c := range candidates {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args, c.ID, c.Name, c.Email, c.Phone, c.Location,
			c.AppliedDate, c.OverallStatus, c.Timeline, c.Notes)
	}
	if _, err := r.db.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		log.Printf("Error bulk inserting %d candidates: %v", len(candidates), err)
		return fmt.Errorf("failed to bulk insert candidates: %w", err)
	}
	return nil
}

// Clear removes every candidate row.
func (r *CandidateRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("failed to clear candidates: %w", err)
	}
	return nil
}
