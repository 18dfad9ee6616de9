package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"
	"talentflow/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
	db      *sql.DB // For the reorder transaction
}

// NewJobService creates a new instance of JobService.
func NewJobService(db *sql.DB) JobService {
	return &jobService{
		jobRepo: sqlite.NewJobRepo(db),
		appRepo: sqlite.NewApplicationRepo(db),
		db:      db,
	}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	// Slug is globally unique; reject the create before writing anything.
	if _, err := s.jobRepo.GetBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: slug %q already in use", ErrConflict, slug)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking slug uniqueness")
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	if order == 0 {
		maxOrder, err := s.jobRepo.MaxOrder(ctx)
		if err != nil {
			return nil, mapRepoError(err, "finding max job order")
		}
		order = maxOrder + 1
	}

	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		ID:     uuid.New(),
		Title:  req.Title,
		Slug:   slug,
		Status: status,
		Tags:   models.StringList(req.Tags),
		Order:  order,
	}
	if job.Tags == nil {
		job.Tags = models.StringList{}
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: slug %q already in use", ErrConflict, slug)
		}
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	log.Printf("Job created: %s (%s)", job.ID, job.Slug)
	return job, nil
}

func (s *jobService) GetJobDetail(ctx context.Context, id uuid.UUID) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}

	candidates, err := s.appRepo.ListCandidatesForJob(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "resolving job candidates")
	}

	return &dto.JobDetailResponse{Job: *job, Candidates: candidates}, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsQuery) (*dto.JobListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}

	// Tag filtering happens here: tags live in a JSON column, so the
	// any-match intersection runs on the already search/status-filtered rows.
	if tags := parseTagFilter(req.Tags); len(tags) > 0 {
		filtered := jobs[:0]
		for _, job := range jobs {
			if jobHasAnyTag(&job, tags) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	total := len(jobs)
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return &dto.JobListResponse{Items: jobs[start:end], Total: total}, nil
}

// parseTagFilter splits a comma-separated tag list into trimmed, lowercased,
// non-empty tokens.
func parseTagFilter(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// jobHasAnyTag reports whether any of the job's tags appears in the filter
// set, case-insensitively.
func jobHasAnyTag(job *models.Job, filter []string) bool {
	for _, tag := range job.Tags {
		tag = strings.ToLower(tag)
		for _, f := range filter {
			if tag == f {
				return true
			}
		}
	}
	return false
}

func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	if req.Slug != nil {
		if err := s.checkSlugFree(ctx, *req.Slug, req.ID); err != nil {
			return nil, err
		}
	}

	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}
	return job, nil
}

func (s *jobService) ReplaceJob(ctx context.Context, req *dto.ReplaceJobRequest) (*models.Job, error) {
	// Full replace enforces the same slug-uniqueness rule as PATCH.
	if err := s.checkSlugFree(ctx, req.Slug, req.ID); err != nil {
		return nil, err
	}

	status := models.JobStatus(req.Status)
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	update := &dto.UpdateJobRequest{
		ID:     req.ID,
		Title:  &req.Title,
		Slug:   &req.Slug,
		Status: &status,
		Tags:   &tags,
		Order:  &req.Order,
	}
	job, err := s.jobRepo.Update(ctx, update)
	if err != nil {
		return nil, mapRepoError(err, "replacing job")
	}
	return job, nil
}

// checkSlugFree rejects a slug already held by a different job.
func (s *jobService) checkSlugFree(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return mapRepoError(err, "checking slug uniqueness")
	}
	if existing.ID != selfID {
		return fmt.Errorf("%w: slug %q already in use", ErrConflict, slug)
	}
	return nil
}

// ReorderJob moves a job from fromOrder to toOrder, shifting every job in
// between by one. The whole shift runs in a single transaction, so a
// concurrent reader never observes a partially shifted list.
func (s *jobService) ReorderJob(ctx context.Context, id uuid.UUID, fromOrder, toOrder int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("ReorderJob: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if anything fails

	txJobRepo := s.jobRepo.WithTx(tx)

	job, err := txJobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: job not found", ErrStaleOrder)
		}
		return mapRepoError(err, "fetching job for reorder")
	}
	// Guard against stale client state: the stored order must still match.
	if job.Order != fromOrder {
		return fmt.Errorf("%w: job order is %d, not %d", ErrStaleOrder, job.Order, fromOrder)
	}

	if fromOrder < toOrder {
		// Moving later: everything in (fromOrder, toOrder] shifts down one.
		err = txJobRepo.ShiftOrders(ctx, id, fromOrder+1, toOrder, -1)
	} else if fromOrder > toOrder {
		// Moving earlier: everything in [toOrder, fromOrder) shifts up one.
		err = txJobRepo.ShiftOrders(ctx, id, toOrder, fromOrder-1, +1)
	}
	if err != nil {
		return mapRepoError(err, "shifting job orders")
	}

	// The moved job takes its target slot last.
	if err := txJobRepo.UpdateOrder(ctx, id, toOrder); err != nil {
		return mapRepoError(err, "placing moved job")
	}

	if err := tx.Commit(); err != nil {
		log.Printf("ReorderJob: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing reorder: %w", err)
	}
	log.Printf("Job %s reordered: %d -> %d", id, fromOrder, toOrder)
	return nil
}
