package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	log "github.com/sirupsen/logrus"
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// Migrate creates the jobs and candidates tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			requirements TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'OPEN',
			deadline TIMESTAMPTZ NOT NULL,
			auto_screened BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id BIGSERIAL PRIMARY KEY,
			job_id BIGINT NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			resume_path TEXT NOT NULL DEFAULT '',
			resume_score INT NOT NULL DEFAULT 0,
			resume_summary TEXT NOT NULL DEFAULT '',
			interview_transcript_path TEXT NOT NULL DEFAULT '',
			interview_score INT NOT NULL DEFAULT 0,
			interview_feedback TEXT NOT NULL DEFAULT '',
			meeting_link TEXT NOT NULL DEFAULT '',
			meeting_time TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'APPLIED',
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS candidates_job_email_idx
			ON candidates (job_id, LOWER(email))`,
	}

	for _, stmt := range schema {
		if _, err := db.connection.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}
