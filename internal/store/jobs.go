package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const jobColumns = `id, title, description, requirements, status, deadline, auto_screened, created_at`

// CreateJob inserts a new opening. The application window closes at
// created_at + windowMinutes; the deadline is set exactly once, here.
func (db *DB) CreateJob(ctx context.Context, title, description, requirements string, windowMinutes int) (*Job, error) {
	job := &Job{}
	query := `INSERT INTO jobs (title, description, requirements, status, deadline)
	          VALUES ($1, $2, $3, $4, NOW() + ($5 * INTERVAL '1 minute'))
	          RETURNING ` + jobColumns
	row := db.connection.QueryRowContext(ctx, query, title, description, requirements, JobOpen, windowMinutes)
	if err := scanJob(row, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (db *DB) GetJob(ctx context.Context, id int64) (*Job, error) {
	job := &Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)
	if err := scanJob(row, job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// ListJobs returns jobs, newest first, optionally filtered by status.
func (db *DB) ListJobs(ctx context.Context, status string) ([]*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job := &Job{}
		if err := scanJob(rows, job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListDueJobs returns open jobs whose deadline has passed and whose
// deadline-triggered screening has not run yet.
func (db *DB) ListDueJobs(ctx context.Context, now time.Time) ([]*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE status = $1 AND auto_screened = FALSE AND deadline <= $2
	          ORDER BY deadline`
	rows, err := db.connection.QueryContext(ctx, query, JobOpen, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job := &Job{}
		if err := scanJob(rows, job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ClaimAutoScreen flips the persisted auto-run marker. It reports true for
// exactly one caller per job; repeated polls and process restarts see the
// flag already set and skip the deadline-triggered screening.
func (db *DB) ClaimAutoScreen(ctx context.Context, jobID int64) (bool, error) {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE jobs SET auto_screened = TRUE WHERE id = $1 AND auto_screened = FALSE`, jobID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ReleaseAutoScreen re-arms the deadline trigger after a failed auto-run so
// a later sweep can retry it. Screening only touches APPLIED candidates, so
// the retry picks up exactly the work the failed run left behind.
func (db *DB) ReleaseAutoScreen(ctx context.Context, jobID int64) error {
	_, err := db.connection.ExecContext(ctx,
		`UPDATE jobs SET auto_screened = FALSE WHERE id = $1`, jobID)
	return err
}

// CloseJob marks an opening CLOSED. Candidates are kept for record-keeping.
func (db *DB) CloseJob(ctx context.Context, id int64) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2`, JobClosed, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteJob removes a job and all of its candidates in one transaction:
// either both are gone afterwards or neither is.
func (db *DB) DeleteJob(ctx context.Context, id int64) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE job_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete candidates: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Deleted job %d and its candidates", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner, job *Job) error {
	return row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.Status,
		&job.Deadline,
		&job.AutoScreened,
		&job.CreatedAt,
	)
}
