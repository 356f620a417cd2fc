package store

import "errors"

var (
	// ErrNotFound is returned when a job or candidate lookup misses.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateApplication is returned when an email applies to the same
	// job twice. Enforced by the unique index on (job_id, lower(email)), so
	// the check-then-insert race cannot produce a second row.
	ErrDuplicateApplication = errors.New("candidate has already applied to this job")
)
