package services

import (
	"context"
	"database/sql"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"

	"github.com/google/uuid"
)

type assignmentService struct {
	assignmentRepo storage.AssignmentRepository
}

// NewAssignmentService creates a new instance of AssignmentService.
func NewAssignmentService(db *sql.DB) AssignmentService {
	return &assignmentService{assignmentRepo: sqlite.NewAssignmentRepo(db)}
}

func (s *assignmentService) ListAssignments(ctx context.Context, applicationID *uuid.UUID) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.List(ctx, applicationID)
	if err != nil {
		return nil, mapRepoError(err, "listing assignments")
	}
	return assignments, nil
}
