// Package seed populates an empty store with a realistic demo dataset. The
// generated volumes and shapes mirror what the UI expects on first run.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"talentflow/config"
	"talentflow/internal/models"
	"talentflow/internal/storage"
	"talentflow/internal/storage/sqlite"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var employmentTags = []string{"full-time", "part-time", "remote", "contract"}

var assignmentTitles = []string{
	"Technical Screening",
	"Code Review Exercise",
	"System Design Discussion",
	"Take-Home Project",
	"Pair Programming Session",
}

// Seeder generates and inserts the demo dataset.
type Seeder struct {
	cfg   config.SeedConfig
	faker *gofakeit.Faker

	jobRepo        storage.JobRepository
	candidateRepo  storage.CandidateRepository
	appRepo        storage.ApplicationRepository
	assessmentRepo storage.AssessmentRepository
	assignmentRepo storage.AssignmentRepository
}

// New creates a Seeder over the given store.
func New(db *sql.DB, cfg config.SeedConfig) *Seeder {
	return &Seeder{
		cfg:            cfg,
		faker:          gofakeit.New(0),
		jobRepo:        sqlite.NewJobRepo(db),
		candidateRepo:  sqlite.NewCandidateRepo(db),
		appRepo:        sqlite.NewApplicationRepo(db),
		assessmentRepo: sqlite.NewAssessmentRepo(db),
		assignmentRepo: sqlite.NewAssignmentRepo(db),
	}
}

// SeedIfNeeded populates the store when it holds no applications. Any other
// state, including partial data from an interrupted run with applications
// present, is left untouched.
func (s *Seeder) SeedIfNeeded(ctx context.Context) error {
	count, err := s.appRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking seed state: %w", err)
	}
	if count > 0 {
		log.Printf("Store already holds %d applications, skipping seed", count)
		return nil
	}
	return s.seed(ctx)
}

func (s *Seeder) seed(ctx context.Context) error {
	log.Println("Seeding store with demo data...")
	start := time.Now()

	if err := s.clearAll(ctx); err != nil {
		return err
	}

	jobs := s.generateJobs()
	if err := s.withRetry("jobs", func() error {
		return s.jobRepo.BulkInsert(ctx, jobs)
	}); err != nil {
		return err
	}

	candidates := s.generateCandidates()
	if err := s.insertBatched("candidates", len(candidates), s.cfg.CandidateBatchSize, func(lo, hi int) error {
		return s.candidateRepo.BulkInsert(ctx, candidates[lo:hi])
	}); err != nil {
		return err
	}

	apps := s.generateApplications(jobs, candidates)
	if err := s.insertBatched("applications", len(apps), s.cfg.ApplicationBatchSize, func(lo, hi int) error {
		return s.appRepo.BulkInsert(ctx, apps[lo:hi])
	}); err != nil {
		return err
	}

	assignments := s.generateAssignments(apps)
	if err := s.withRetry("assignments", func() error {
		return s.assignmentRepo.BulkInsert(ctx, assignments)
	}); err != nil {
		return err
	}

	assessments := s.generateAssessments(jobs)
	if err := s.withRetry("assessments", func() error {
		return s.assessmentRepo.BulkInsert(ctx, assessments)
	}); err != nil {
		return err
	}

	log.Printf("Seed complete in %s: %d jobs, %d candidates, %d applications, %d assignments, %d assessments",
		time.Since(start).Round(time.Millisecond), len(jobs), len(candidates), len(apps), len(assignments), len(assessments))
	return nil
}

func (s *Seeder) clearAll(ctx context.Context) error {
	clears := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"assignments", s.assignmentRepo.Clear},
		{"assessments", s.assessmentRepo.Clear},
		{"applications", s.appRepo.Clear},
		{"candidates", s.candidateRepo.Clear},
		{"jobs", s.jobRepo.Clear},
	}
	for _, c := range clears {
		if err := c.fn(ctx); err != nil {
			return fmt.Errorf("clearing %s before seed: %w", c.name, err)
		}
	}
	return nil
}

// withRetry retries a bulk insert a bounded number of times back to back.
// Exhaustion is fatal to the whole seed run.
func (s *Seeder) withRetry(entity string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Printf("Seed insert failed (%s, attempt %d/%d): %v", entity, attempt, s.cfg.MaxRetries, err)
	}
	return fmt.Errorf("seeding %s: %w", entity, err)
}

func (s *Seeder) insertBatched(entity string, total, batchSize int, insert func(lo, hi int) error) error {
	for lo := 0; lo < total; lo += batchSize {
		hi := lo + batchSize
		if hi > total {
			hi = total
		}
		if err := s.withRetry(entity, func() error { return insert(lo, hi) }); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) generateJobs() []models.Job {
	jobs := make([]models.Job, s.cfg.Jobs)
	for i := range jobs {
		title := s.faker.JobTitle()
		status := models.JobStatusActive
		if i%5 == 0 {
			status = models.JobStatusArchived
		}
		jobs[i] = models.Job{
			ID:     uuid.New(),
			Title:  title,
			Slug:   fmt.Sprintf("%s-%d", kebab(title), i+1),
			Status: status,
			Tags: models.StringList{
				kebab(s.faker.ProductName()),
				kebab(s.faker.City()),
				s.faker.RandomString(employmentTags),
			},
			Order: i,
		}
	}
	return jobs
}

func (s *Seeder) generateCandidates() []models.Candidate {
	statuses := []string{"active", "inactive", "hired"}
	now := time.Now()
	yearAgo := now.AddDate(-1, 0, 0)

	candidates := make([]models.Candidate, s.cfg.Candidates)
	for i := range candidates {
		first := s.faker.FirstName()
		last := s.faker.LastName()
		candidates[i] = models.Candidate{
			ID:            uuid.New(),
			Name:          first + " " + last,
			Email:         fmt.Sprintf("%s%d@example.com", strings.ToLower(first), i+1),
			Phone:         s.faker.Phone(),
			Location:      s.faker.City() + ", " + s.faker.StateAbr(),
			AppliedDate:   s.faker.DateRange(yearAgo, now).Format("2006-01-02"),
			OverallStatus: s.faker.RandomString(statuses),
			Timeline:      models.TimelineList{},
			Notes:         models.NoteList{},
		}
	}
	return candidates
}

func (s *Seeder) generateApplications(jobs []models.Job, candidates []models.Candidate) []models.Application {
	apps := make([]models.Application, 0, len(candidates)*2)
	for _, candidate := range candidates {
		target := s.faker.Number(1, 3)
		chosen := make(map[int]bool, target)
		// Bounded retries keep the per-candidate jobs distinct without ever
		// spinning on small job counts.
		for len(chosen) < target {
			picked := false
			for attempt := 0; attempt < 10; attempt++ {
				idx := s.faker.Number(0, len(jobs)-1)
				if !chosen[idx] {
					chosen[idx] = true
					picked = true
					break
				}
			}
			if !picked {
				break
			}
		}

		for idx := range chosen {
			job := jobs[idx]
			app := models.Application{
				ID:               uuid.New(),
				CandidateID:      candidate.ID,
				JobID:            job.ID,
				Stage:            models.Stages[s.faker.Number(0, len(models.Stages)-1)],
				CandidateName:    candidate.Name,
				CandidateEmail:   candidate.Email,
				JobTitle:         job.Title,
				AssessmentStatus: models.AssessmentNotStarted,
			}
			if s.faker.Float32Range(0, 1) < 0.3 {
				s.attachSubmission(&app)
			}
			apps = append(apps, app)
		}
	}
	return apps
}

// attachSubmission marks ~half of the selected applications submitted with a
// full response set and the rest in progress with a partial one.
func (s *Seeder) attachSubmission(app *models.Application) {
	now := time.Now()
	if s.faker.Bool() {
		app.AssessmentStatus = models.AssessmentSubmitted
		app.Submission = &models.AssessmentSubmission{
			SubmittedAt: s.faker.DateRange(now.AddDate(0, 0, -30), now).Format(time.RFC3339),
			Responses:   s.sampleResponses(5),
		}
	} else {
		app.AssessmentStatus = models.AssessmentInProgress
		app.Submission = &models.AssessmentSubmission{
			StartedAt: s.faker.DateRange(now.AddDate(0, 0, -14), now).Format(time.RFC3339),
			Responses: s.sampleResponses(2),
		}
	}
}

// sampleResponses answers the first n of the seeded assessment questions,
// keyed the way generateAssessments names them.
func (s *Seeder) sampleResponses(n int) models.AnswerMap {
	answers := []interface{}{
		s.faker.RandomString([]string{"0-1", "1-3", "3-5", "5+"}),
		[]string{"go", "postgres"},
		s.faker.Sentence(15),
		s.faker.Sentence(5),
		s.faker.Number(0, 40),
	}
	responses := make(models.AnswerMap, n)
	for i := 0; i < n && i < len(answers); i++ {
		responses[fmt.Sprintf("q-%d", i+1)] = answers[i]
	}
	return responses
}

func (s *Seeder) generateAssignments(apps []models.Application) []models.Assignment {
	types := []string{"assessment", "interview", "exercise", "review"}
	statuses := []string{"pending", "in-progress", "completed"}
	priorities := []string{"low", "medium", "high"}

	eligible := make([]models.Application, 0, s.cfg.AssignmentCap)
	for _, app := range apps {
		switch app.Stage {
		case models.StageScreening, models.StageInterview, models.StageOffer:
			eligible = append(eligible, app)
		}
		if len(eligible) == s.cfg.AssignmentCap {
			break
		}
	}

	now := time.Now()
	assignments := make([]models.Assignment, 0, len(eligible)*2)
	for _, app := range eligible {
		for n := s.faker.Number(1, 2); n > 0; n-- {
			created := s.faker.DateRange(now.AddDate(0, 0, -21), now)
			a := models.Assignment{
				ID:                uuid.New(),
				ApplicationID:     app.ID,
				CandidateID:       app.CandidateID,
				JobID:             app.JobID,
				Title:             s.faker.RandomString(assignmentTitles),
				Description:       s.faker.Sentence(8),
				Type:              s.faker.RandomString(types),
				Status:            s.faker.RandomString(statuses),
				Priority:          s.faker.RandomString(priorities),
				DueDate:           s.faker.DateRange(now, now.AddDate(0, 0, 14)).Format(time.RFC3339),
				CreatedAt:         created.Format(time.RFC3339),
				UpdatedAt:         created.Format(time.RFC3339),
				AssignedTo:        s.faker.Name(),
				EstimatedDuration: s.faker.Number(30, 180),
				Instructions:      s.faker.Sentence(12),
				EvaluationCriteria: models.StringList{
					"Code quality",
					"Communication",
					s.faker.RandomString([]string{"Problem solving", "System thinking", "Attention to detail"}),
				},
				Attachments: models.AttachmentList{},
			}
			if s.faker.Float32Range(0, 1) < 0.5 {
				score := s.faker.Number(40, 100)
				a.Score = &score
			}
			if s.faker.Float32Range(0, 1) < 0.3 {
				feedback := s.faker.Sentence(10)
				a.Feedback = &feedback
			}
			if s.faker.Float32Range(0, 1) < 0.2 {
				a.Attachments = models.AttachmentList{{
					Name:       "notes.pdf",
					URL:        "https://files.example.com/" + uuid.NewString(),
					UploadedAt: created.Format(time.RFC3339),
				}}
			}
			assignments = append(assignments, a)
		}
	}
	return assignments
}

func (s *Seeder) generateAssessments(jobs []models.Job) []models.Assessment {
	n := s.cfg.AssessmentJobs
	if n > len(jobs) {
		n = len(jobs)
	}

	assessments := make([]models.Assessment, n)
	for i := 0; i < n; i++ {
		maxLen := 1000
		min, max := 0.0, 40.0
		assessments[i] = models.Assessment{
			ID:    uuid.New(),
			JobID: jobs[i].ID,
			Schema: models.AssessmentSchema{
				Title:         jobs[i].Title + " Assessment",
				Description:   "Initial screening assessment for the " + jobs[i].Title + " position.",
				EstimatedTime: "30 minutes",
				Sections: []models.Section{{
					ID:    "s-1",
					Title: "Technical Skills",
					Questions: []models.Question{
						{
							ID: "q-1", Type: models.QuestionSingleChoice, Required: true,
							Label: "How many years of professional experience do you have?",
							Options: []models.Option{
								{ID: "o-1", Label: "0-1 years", Value: "0-1"},
								{ID: "o-2", Label: "1-3 years", Value: "1-3"},
								{ID: "o-3", Label: "3-5 years", Value: "3-5"},
								{ID: "o-4", Label: "5+ years", Value: "5+"},
							},
						},
						{
							ID: "q-2", Type: models.QuestionMultiChoice, Required: true,
							Label: "Which of these technologies have you worked with?",
							Options: []models.Option{
								{ID: "o-1", Label: "Go", Value: "go"},
								{ID: "o-2", Label: "PostgreSQL", Value: "postgres"},
								{ID: "o-3", Label: "Redis", Value: "redis"},
								{ID: "o-4", Label: "Kubernetes", Value: "kubernetes"},
							},
						},
						{
							ID: "q-3", Type: models.QuestionLongText, Required: true,
							Label:     "Describe a challenging project you led and its outcome.",
							MaxLength: &maxLen,
						},
						{
							ID: "q-4", Type: models.QuestionShortText, Required: false,
							Label: "What is your preferred working timezone?",
						},
						{
							ID: "q-5", Type: models.QuestionNumeric, Required: true,
							Label: "How many hours per week are you available?",
							Min:   &min, Max: &max,
						},
					},
				}},
			},
		}
	}
	return assessments
}

// kebab lowercases a phrase and joins its words with hyphens for slugs and
// tags.
func kebab(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
