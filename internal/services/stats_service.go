package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	statsCacheKey = "talentflow:stats"
	statsCacheTTL = 15 * time.Second
)

type statsService struct {
	jobRepo       storage.JobRepository
	candidateRepo storage.CandidateRepository
	appRepo       storage.ApplicationRepository
	redisClient   *redis.Client
}

// NewStatsService creates a new instance of StatsService. redisClient may be
// nil, in which case every call recomputes from the store.
func NewStatsService(db *sql.DB, redisClient *redis.Client) StatsService {
	return &statsService{
		jobRepo:       sqlite.NewJobRepo(db),
		candidateRepo: sqlite.NewCandidateRepo(db),
		appRepo:       sqlite.NewApplicationRepo(db),
		redisClient:   redisClient,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	totalJobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting jobs")
	}
	totalCandidates, err := s.candidateRepo.Count(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting candidates")
	}
	totalApps, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting applications")
	}
	byStatus, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting jobs by status")
	}
	byStage, err := s.appRepo.CountByStage(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting applications by stage")
	}

	stats := &dto.StatsResponse{
		TotalJobs:         int(totalJobs),
		TotalCandidates:   int(totalCandidates),
		TotalApplications: int(totalApps),
		JobsByStatus: dto.JobsByStatus{
			Active:   byStatus[models.JobStatusActive],
			Archived: byStatus[models.JobStatusArchived],
		},
		ApplicationsByStage: make(map[string]int, len(models.Stages)),
	}
	// Stages with no applications still appear as zero entries.
	for _, stage := range models.Stages {
		stats.ApplicationsByStage[string(stage)] = byStage[stage]
	}

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *statsService) fromCache(ctx context.Context) *dto.StatsResponse {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats dto.StatsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *statsService) toCache(ctx context.Context, stats *dto.StatsResponse) {
	if s.redisClient == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		log.Printf("Error caching stats: %v", err)
	}
}
