// Package interview runs the chat-based screening interview. Sessions are
// in-memory; only the finished transcript is persisted.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"hireos/internal/oracle"
	"hireos/internal/store"
)

var (
	// ErrNotEligible is returned when the candidate's status does not allow
	// an interview.
	ErrNotEligible = errors.New("candidate is not eligible for an interview")

	// ErrAlreadyInterviewed is returned when the candidate has already
	// completed the interview.
	ErrAlreadyInterviewed = errors.New("interview already completed")

	// ErrNoSession is returned for messages against a session that was never
	// started or already finished.
	ErrNoSession = errors.New("no active interview session")
)

// Store is the slice of the record store the interview portal needs.
type Store interface {
	GetCandidateByEmail(ctx context.Context, email string) (*store.CandidateJob, error)
	UpdateCandidate(ctx context.Context, id int64, upd store.CandidateUpdate) error
}

// Interviewer produces the interviewer's side of the conversation.
type Interviewer interface {
	Interview(ctx context.Context, jobTitle, jobRequirements string, history []oracle.Message) (string, error)
}

// BlobWriter persists the finished transcript.
type BlobWriter interface {
	Put(ctx context.Context, prefix, name string, data []byte) (string, error)
}

type session struct {
	// mu serializes the turns of one candidate; history is only touched
	// while it is held.
	mu              sync.Mutex
	candidateID     int64
	candidateName   string
	jobTitle        string
	jobRequirements string
	history         []oracle.Message
}

type Manager struct {
	store       Store
	interviewer Interviewer
	blobs       BlobWriter

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewManager(st Store, iv Interviewer, blobs BlobWriter) *Manager {
	return &Manager{
		store:       st,
		interviewer: iv,
		blobs:       blobs,
		sessions:    make(map[int64]*session),
	}
}

// StartResult is returned by Start: the candidate plus the interviewer's
// opening message.
type StartResult struct {
	CandidateID int64  `json:"candidate_id"`
	Name        string `json:"name"`
	JobTitle    string `json:"job_title"`
	Greeting    string `json:"greeting"`
}

// Start opens an interview session for the candidate registered under email.
// Only SHORTLISTED and INTERVIEW_PENDING candidates may start; the candidate
// is moved to INTERVIEW_PENDING so an abandoned session is visible. Starting
// again while a session exists resumes it with a fresh greeting.
func (m *Manager) Start(ctx context.Context, email string) (*StartResult, error) {
	cj, err := m.store.GetCandidateByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	switch cj.Status {
	case store.StatusShortlisted, store.StatusInterviewPending:
	case store.StatusInterviewCompleted:
		return nil, ErrAlreadyInterviewed
	default:
		return nil, fmt.Errorf("%w: status is %s", ErrNotEligible, cj.Status)
	}

	greeting, err := m.interviewer.Interview(ctx, cj.JobTitle, cj.JobRequirements, nil)
	if err != nil {
		return nil, err
	}

	if cj.Status == store.StatusShortlisted {
		status := store.StatusInterviewPending
		if err := m.store.UpdateCandidate(ctx, cj.ID, store.CandidateUpdate{Status: &status}); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.sessions[cj.ID] = &session{
		candidateID:     cj.ID,
		candidateName:   cj.Name,
		jobTitle:        cj.JobTitle,
		jobRequirements: cj.JobRequirements,
		history:         []oracle.Message{{Role: "assistant", Content: greeting}},
	}
	m.mu.Unlock()

	log.Printf("[Interview] session started for candidate %d (%s)", cj.ID, cj.Name)

	return &StartResult{
		CandidateID: cj.ID,
		Name:        cj.Name,
		JobTitle:    cj.JobTitle,
		Greeting:    greeting,
	}, nil
}

// Message appends the candidate's answer and returns the interviewer's next
// question. The session lock is held across the oracle call, so concurrent
// turns for the same candidate are processed one at a time and none is lost.
func (m *Manager) Message(ctx context.Context, candidateID int64, text string) (string, error) {
	m.mu.Lock()
	sess, ok := m.sessions[candidateID]
	m.mu.Unlock()
	if !ok {
		return "", ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.history = append(sess.history, oracle.Message{Role: "user", Content: text})

	reply, err := m.interviewer.Interview(ctx, sess.jobTitle, sess.jobRequirements, sess.history)
	if err != nil {
		// Drop the unanswered message so a retry does not double it.
		sess.history = sess.history[:len(sess.history)-1]
		return "", err
	}

	sess.history = append(sess.history, oracle.Message{Role: "assistant", Content: reply})
	return reply, nil
}

// Finish closes the session: the transcript is written to blob storage and
// the candidate moves to INTERVIEW_COMPLETED, ready for evaluation.
func (m *Manager) Finish(ctx context.Context, candidateID int64) (string, error) {
	m.mu.Lock()
	sess, ok := m.sessions[candidateID]
	if ok {
		delete(m.sessions, candidateID)
	}
	m.mu.Unlock()
	if !ok {
		return "", ErrNoSession
	}

	// Wait out any in-flight turn before snapshotting the history.
	sess.mu.Lock()
	transcript := renderTranscript(sess.history)
	sess.mu.Unlock()

	name := fmt.Sprintf("interview_%d.txt", candidateID)

	path, err := m.blobs.Put(ctx, "transcripts", name, []byte(transcript))
	if err != nil {
		// Keep the session so the candidate can retry the finish.
		m.mu.Lock()
		m.sessions[candidateID] = sess
		m.mu.Unlock()
		return "", err
	}

	status := store.StatusInterviewCompleted
	upd := store.CandidateUpdate{TranscriptPath: &path, Status: &status}
	if err := m.store.UpdateCandidate(ctx, candidateID, upd); err != nil {
		return "", err
	}

	log.Printf("[Interview] session finished for candidate %d, transcript at %s", candidateID, path)
	return path, nil
}

func renderTranscript(history []oracle.Message) string {
	var b strings.Builder
	for _, m := range history {
		role := "CANDIDATE"
		if m.Role == "assistant" {
			role = "INTERVIEWER"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", role, m.Content)
	}
	return b.String()
}
