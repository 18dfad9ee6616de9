package services

import (
	"context"
	"database/sql"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
)

type candidateService struct {
	candidateRepo storage.CandidateRepository
	appRepo       storage.ApplicationRepository
}

// NewCandidateService creates a new instance of CandidateService.
func NewCandidateService(db *sql.DB) CandidateService {
	return &candidateService{
		candidateRepo: sqlite.NewCandidateRepo(db),
		appRepo:       sqlite.NewApplicationRepo(db),
	}
}

func (s *candidateService) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing candidates")
	}
	return candidates, nil
}

func (s *candidateService) GetCandidateDetail(ctx context.Context, id uuid.UUID) (*dto.CandidateDetailResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting candidate by ID")
	}

	jobs, err := s.appRepo.ListJobsForCandidate(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "resolving candidate jobs")
	}

	return &dto.CandidateDetailResponse{Candidate: *candidate, Jobs: jobs}, nil
}

func (s *candidateService) UpdateCandidate(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating candidate")
	}
	return candidate, nil
}
