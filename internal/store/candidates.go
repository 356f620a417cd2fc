package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const candidateColumns = `id, job_id, name, email, phone, resume_path, resume_score, resume_summary,
	interview_transcript_path, interview_score, interview_feedback, meeting_link, meeting_time,
	status, applied_at`

// CreateCandidate records a new application in status APPLIED. The unique
// index on (job_id, lower(email)) rejects a second application from the same
// address; the conflict surfaces as ErrDuplicateApplication.
func (db *DB) CreateCandidate(ctx context.Context, jobID int64, name, email, phone, resumePath string) (*Candidate, error) {
	cand := &Candidate{}
	query := `INSERT INTO candidates (job_id, name, email, phone, resume_path, status)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING ` + candidateColumns
	row := db.connection.QueryRowContext(ctx, query, jobID, name, email, phone, resumePath, StatusApplied)
	if err := scanCandidate(row, cand); err != nil {
		return nil, translateInsertErr(err)
	}
	return cand, nil
}

// translateInsertErr maps constraint violations on the candidates table onto
// the store's sentinel errors: the unique (job_id, lower(email)) index means
// a duplicate application, the job_id foreign key a missing job.
func translateInsertErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return ErrDuplicateApplication
		case "foreign_key_violation":
			return ErrNotFound
		}
	}
	return err
}

func (db *DB) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	cand := &Candidate{}
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)
	if err := scanCandidate(row, cand); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cand, nil
}

// GetCandidateByEmail resolves an interview-portal login: the candidate plus
// the job context the interviewer needs.
func (db *DB) GetCandidateByEmail(ctx context.Context, email string) (*CandidateJob, error) {
	cj := &CandidateJob{}
	query := `SELECT c.id, c.job_id, c.name, c.email, c.phone, c.resume_path, c.resume_score,
	                 c.resume_summary, c.interview_transcript_path, c.interview_score,
	                 c.interview_feedback, c.meeting_link, c.meeting_time, c.status, c.applied_at,
	                 j.title, j.requirements
	          FROM candidates c
	          JOIN jobs j ON c.job_id = j.id
	          WHERE LOWER(c.email) = LOWER($1)
	          ORDER BY c.applied_at DESC
	          LIMIT 1`
	row := db.connection.QueryRowContext(ctx, query, email)
	err := row.Scan(
		&cj.ID, &cj.JobID, &cj.Name, &cj.Email, &cj.Phone,
		&cj.ResumePath, &cj.ResumeScore, &cj.ResumeSummary,
		&cj.TranscriptPath, &cj.InterviewScore, &cj.InterviewFeedback,
		&cj.MeetingLink, &cj.MeetingTime, &cj.Status, &cj.AppliedAt,
		&cj.JobTitle, &cj.JobRequirements,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cj, nil
}

// ListCandidates returns a job's candidates in application order, optionally
// restricted to a set of statuses.
func (db *DB) ListCandidates(ctx context.Context, jobID int64, statuses ...string) ([]*Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE job_id = $1`
	args := []interface{}{jobID}
	if len(statuses) > 0 {
		placeholders := make([]string, 0, len(statuses))
		for _, s := range statuses {
			args = append(args, s)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		query += ` AND status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY applied_at, id`

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Candidate
	for rows.Next() {
		cand := &Candidate{}
		if err := scanCandidate(rows, cand); err != nil {
			return nil, err
		}
		res = append(res, cand)
	}
	return res, rows.Err()
}

// UpdateCandidate applies a partial update; nil fields are left as they are.
// Each call is one immediately durable write, so a multi-candidate batch that
// dies halfway leaves earlier candidates updated and later ones untouched.
func (db *DB) UpdateCandidate(ctx context.Context, id int64, upd CandidateUpdate) error {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.ResumeScore != nil {
		add("resume_score", *upd.ResumeScore)
	}
	if upd.ResumeSummary != nil {
		add("resume_summary", *upd.ResumeSummary)
	}
	if upd.TranscriptPath != nil {
		add("interview_transcript_path", *upd.TranscriptPath)
	}
	if upd.InterviewScore != nil {
		add("interview_score", *upd.InterviewScore)
	}
	if upd.InterviewFeedback != nil {
		add("interview_feedback", *upd.InterviewFeedback)
	}
	if upd.MeetingLink != nil {
		add("meeting_link", *upd.MeetingLink)
	}
	if upd.MeetingTime != nil {
		add("meeting_time", *upd.MeetingTime)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))

	res, err := db.connection.ExecContext(ctx, query, args...)
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

// DeleteCandidates clears every application. Used by the demo-reset tool;
// jobs are preserved.
func (db *DB) DeleteCandidates(ctx context.Context) (int64, error) {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM candidates`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanCandidate(row rowScanner, c *Candidate) error {
	return row.Scan(
		&c.ID,
		&c.JobID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.ResumePath,
		&c.ResumeScore,
		&c.ResumeSummary,
		&c.TranscriptPath,
		&c.InterviewScore,
		&c.InterviewFeedback,
		&c.MeetingLink,
		&c.MeetingTime,
		&c.Status,
		&c.AppliedAt,
	)
}
