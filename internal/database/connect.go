package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"talentflow/config"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	log "github.com/sirupsen/logrus"
)

// Schema for the five entity tables. Secondary indices cover every field used
// for equality lookup: slug, order, and the foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	status TEXT NOT NULL DEFAULT 'active',
	tags TEXT NOT NULL DEFAULT '[]',
	sort_order INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_jobs_sort_order ON jobs(sort_order);

CREATE TABLE IF NOT EXISTS candidates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	applied_date TEXT NOT NULL DEFAULT '',
	overall_status TEXT NOT NULL DEFAULT 'active',
	timeline TEXT NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates(email);

CREATE TABLE IF NOT EXISTS applications (
	id TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	job_id TEXT NOT NULL,
	stage TEXT NOT NULL DEFAULT 'Applied',
	candidate_name TEXT NOT NULL DEFAULT '',
	candidate_email TEXT NOT NULL DEFAULT '',
	job_title TEXT NOT NULL DEFAULT '',
	assessment_status TEXT NOT NULL DEFAULT 'not-started',
	assessment_submission TEXT
);
CREATE INDEX IF NOT EXISTS idx_applications_candidate_id ON applications(candidate_id);
CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);

CREATE TABLE IF NOT EXISTS assessments (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL,
	schema TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_job_id ON assessments(job_id);

CREATE TABLE IF NOT EXISTS assignments (
	id TEXT PRIMARY KEY,
	application_id TEXT NOT NULL,
	candidate_id TEXT NOT NULL,
	job_id TEXT NOT NULL,
	assessment_id TEXT,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	priority TEXT NOT NULL DEFAULT 'medium',
	due_date TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL DEFAULT '',
	assigned_to TEXT NOT NULL DEFAULT '',
	estimated_duration INTEGER NOT NULL DEFAULT 0,
	instructions TEXT NOT NULL DEFAULT '',
	evaluation_criteria TEXT NOT NULL DEFAULT '[]',
	score INTEGER,
	feedback TEXT,
	attachments TEXT NOT NULL DEFAULT '[]',
	answers TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_assignments_application_id ON assignments(application_id);
`

// Open opens (or creates) the embedded SQLite database and applies the
// schema. The store is a process-wide singleton opened once at startup and
// never explicitly torn down.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", cfg.Path)

	log.Println("Attempting to open database...")
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; one connection avoids SQLITE_BUSY churn and
	// matches the single-writer cooperative model this store assumes.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Printf("Database opened at %s", cfg.Path)
	return db, nil
}
