package services

import (
	"context"
	"database/sql"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(db *sql.DB) ApplicationService {
	return &applicationService{appRepo: sqlite.NewApplicationRepo(db)}
}

func (s *applicationService) ListApplications(ctx context.Context, req *dto.ListApplicationsQuery) (*dto.ApplicationListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 100
	}

	items, total, err := s.appRepo.ListEnriched(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return &dto.ApplicationListResponse{Items: items, Total: total}, nil
}

func (s *applicationService) UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating application")
	}
	return app, nil
}
