// Package pipeline is the candidate lifecycle engine: the state machine
// deciding which oracle calls to make for a batch of candidates and which
// status and notification to apply to each.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"hireos/internal/document"
	"hireos/internal/notify"
	"hireos/internal/store"
)

var (
	// ErrInvalidTransition is returned when an operation is attempted from
	// the wrong candidate status. The status is left unchanged.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrBatchInProgress is returned when a screening or evaluation batch
	// for the job is already running.
	ErrBatchInProgress = errors.New("batch operation already in progress for this job")
)

// Decision is the admin's final verdict on an HR-round candidate.
type Decision string

const (
	DecisionHire   Decision = "HIRE"
	DecisionReject Decision = "REJECT"
)

// Store is the slice of the record store the engine needs. The engine never
// caches records across calls: every operation re-reads then writes.
type Store interface {
	GetJob(ctx context.Context, id int64) (*store.Job, error)
	GetCandidate(ctx context.Context, id int64) (*store.Candidate, error)
	ListCandidates(ctx context.Context, jobID int64, statuses ...string) ([]*store.Candidate, error)
	UpdateCandidate(ctx context.Context, id int64, upd store.CandidateUpdate) error
}

// Oracle is the external scoring service. Its output is raw text that the
// engine parses and never trusts.
type Oracle interface {
	ReviewResume(ctx context.Context, resumeText, jobTitle, jobDescription, jobRequirements string) (string, error)
	ReviewTranscript(ctx context.Context, candidateName, transcript, jobTitle, jobRequirements string) (string, error)
}

// Notifier delivers transition emails. Failures are logged and never roll
// back the status change that was committed first.
type Notifier interface {
	Send(ctx context.Context, kind notify.TemplateKind, candidateName, candidateEmail, jobTitle string, meeting *notify.MeetingDetails) error
}

// BlobReader reads stored resume and transcript files.
type BlobReader interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

type Engine struct {
	store    Store
	oracle   Oracle
	notifier Notifier
	blobs    BlobReader
	locks    *jobLocks
}

func NewEngine(st Store, or Oracle, nt Notifier, blobs BlobReader) *Engine {
	return &Engine{
		store:    st,
		oracle:   or,
		notifier: nt,
		blobs:    blobs,
		locks:    newJobLocks(),
	}
}

// Outcome is one candidate's result within a batch report.
type Outcome struct {
	CandidateID int64  `json:"candidate_id"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Status      string `json:"status"`
	Notified    bool   `json:"notified,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Report is the per-candidate outcome list of a batch operation. Individual
// candidate failures never abort the batch; they show up here instead.
type Report struct {
	JobID    int64     `json:"job_id"`
	Outcomes []Outcome `json:"outcomes"`
}

// ScreenResumes scores every APPLIED candidate of a job and moves each to
// SHORTLISTED (score >= 70) or REJECTED. Oracle or parse failures reject
// with score 0 (fail-closed). Calling it again when nothing is APPLIED is a
// no-op, so repeated invocations are safe. Cancellation is honored between
// candidates; candidates already written stay written.
func (e *Engine) ScreenResumes(ctx context.Context, jobID int64) (*Report, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !e.locks.tryAcquire(jobID) {
		return nil, ErrBatchInProgress
	}
	defer e.locks.release(jobID)

	candidates, err := e.store.ListCandidates(ctx, jobID, store.StatusApplied)
	if err != nil {
		return nil, err
	}

	report := &Report{JobID: jobID, Outcomes: []Outcome{}}
	if len(candidates) == 0 {
		log.Printf("[Engine] no pending candidates to screen for job %d", jobID)
		return report, nil
	}

	log.Printf("[Engine] screening %d candidates for job %d", len(candidates), jobID)

	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		score, summary, note := e.screenOne(ctx, job, cand)

		status := store.StatusRejected
		if score >= ShortlistThreshold {
			status = store.StatusShortlisted
		}

		upd := store.CandidateUpdate{
			ResumeScore:   &score,
			ResumeSummary: &summary,
			Status:        &status,
		}
		if err := e.store.UpdateCandidate(ctx, cand.ID, upd); err != nil {
			log.Printf("[Engine] failed to update candidate %d: %v", cand.ID, err)
			report.Outcomes = append(report.Outcomes, Outcome{
				CandidateID: cand.ID, Name: cand.Name, Score: score,
				Status: cand.Status, Note: "update failed: " + err.Error(),
			})
			continue
		}

		// Status is committed; the invite is best-effort from here.
		notified := false
		if status == store.StatusShortlisted {
			if err := e.notifier.Send(ctx, notify.ShortlistInvite, cand.Name, cand.Email, job.Title, nil); err != nil {
				log.Printf("[Engine] shortlist email to %s failed: %v", cand.Email, err)
				note = appendNote(note, "email failed")
			} else {
				notified = true
			}
		}

		report.Outcomes = append(report.Outcomes, Outcome{
			CandidateID: cand.ID, Name: cand.Name, Score: score,
			Status: status, Notified: notified, Note: note,
		})
	}

	return report, nil
}

// screenOne produces the screening score for a single candidate. Every
// failure mode collapses to the fail-closed default: score 0 with a
// parse-failure marker, which the caller turns into REJECTED.
func (e *Engine) screenOne(ctx context.Context, job *store.Job, cand *store.Candidate) (score int, summary, note string) {
	data, err := e.blobs.Get(ctx, cand.ResumePath)
	if err != nil {
		log.Printf("[Engine] resume read failed for candidate %d: %v", cand.ID, err)
		return 0, parseFailedSummary, "resume unreadable"
	}

	text, err := document.Extract(cand.ResumePath, data)
	if err != nil {
		log.Printf("[Engine] resume extraction failed for candidate %d: %v", cand.ID, err)
		return 0, parseFailedSummary, "resume unreadable"
	}

	raw, err := e.oracle.ReviewResume(ctx, text, job.Title, job.Description, job.Requirements)
	if err != nil {
		log.Printf("[Engine] oracle failed for candidate %d: %v", cand.ID, err)
		return 0, parseFailedSummary, "oracle failure"
	}

	score, summary, ok := parseResumeReview(raw)
	if !ok {
		log.Printf("[Engine] unparseable oracle output for candidate %d", cand.ID)
		return 0, parseFailedSummary, "oracle output unparseable"
	}
	return score, summary, ""
}

// EvaluateInterviews grades every INTERVIEW_COMPLETED candidate of a job
// and moves each to FINALIST or REJECTED. FINALIST candidates are included
// again on purpose: re-running the evaluation overwrites their score, which
// is how scoring corrections are applied. Unlike screening, failures here
// fail open to FINALIST with a manual-review marker.
func (e *Engine) EvaluateInterviews(ctx context.Context, jobID int64) (*Report, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !e.locks.tryAcquire(jobID) {
		return nil, ErrBatchInProgress
	}
	defer e.locks.release(jobID)

	candidates, err := e.store.ListCandidates(ctx, jobID, store.StatusInterviewCompleted, store.StatusFinalist)
	if err != nil {
		return nil, err
	}

	report := &Report{JobID: jobID, Outcomes: []Outcome{}}
	if len(candidates) == 0 {
		log.Printf("[Engine] no candidates ready for evaluation for job %d", jobID)
		return report, nil
	}

	log.Printf("[Engine] evaluating %d transcripts for job %d", len(candidates), jobID)

	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if cand.TranscriptPath == "" {
			report.Outcomes = append(report.Outcomes, Outcome{
				CandidateID: cand.ID, Name: cand.Name,
				Status: cand.Status, Note: "no transcript, skipped",
			})
			continue
		}

		score, feedback, finalist, note := e.evaluateOne(ctx, job, cand)

		status := store.StatusRejected
		if finalist {
			status = store.StatusFinalist
		}

		upd := store.CandidateUpdate{
			InterviewScore:    &score,
			InterviewFeedback: &feedback,
			Status:            &status,
		}
		if err := e.store.UpdateCandidate(ctx, cand.ID, upd); err != nil {
			log.Printf("[Engine] failed to update candidate %d: %v", cand.ID, err)
			report.Outcomes = append(report.Outcomes, Outcome{
				CandidateID: cand.ID, Name: cand.Name, Score: score,
				Status: cand.Status, Note: "update failed: " + err.Error(),
			})
			continue
		}

		report.Outcomes = append(report.Outcomes, Outcome{
			CandidateID: cand.ID, Name: cand.Name, Score: score,
			Status: status, Note: note,
		})
	}

	return report, nil
}

// evaluateOne grades one transcript. All failure modes collapse to the
// fail-open default: FINALIST with score 50 and a manual-review marker.
func (e *Engine) evaluateOne(ctx context.Context, job *store.Job, cand *store.Candidate) (score int, feedback string, finalist bool, note string) {
	data, err := e.blobs.Get(ctx, cand.TranscriptPath)
	if err != nil {
		log.Printf("[Engine] transcript read failed for candidate %d: %v", cand.ID, err)
		return 50, manualReviewNote, true, "transcript unreadable"
	}

	transcript, err := document.Extract(cand.TranscriptPath, data)
	if err != nil {
		log.Printf("[Engine] transcript extraction failed for candidate %d: %v", cand.ID, err)
		return 50, manualReviewNote, true, "transcript unreadable"
	}

	raw, err := e.oracle.ReviewTranscript(ctx, cand.Name, transcript, job.Title, job.Requirements)
	if err != nil {
		log.Printf("[Engine] oracle failed for candidate %d: %v", cand.ID, err)
		return 50, manualReviewNote, true, "oracle failure"
	}

	score, feedback, decision, ok := parseInterviewReview(raw)
	if !ok {
		log.Printf("[Engine] unparseable oracle output for candidate %d", cand.ID)
		return 50, manualReviewNote, true, "oracle output unparseable"
	}
	return score, feedback, isFinalistDecision(decision), ""
}

// ScheduleHR books the HR round for a finalist: stores the meeting link and
// time, moves the candidate to HR_ROUND_SCHEDULED and sends the invite.
func (e *Engine) ScheduleHR(ctx context.Context, candidateID int64, meetingLink string, meetingTime time.Time) (*store.Candidate, error) {
	cand, err := e.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if cand.Status != store.StatusFinalist {
		return nil, fmt.Errorf("%w: schedule_hr requires FINALIST, candidate %d is %s",
			ErrInvalidTransition, candidateID, cand.Status)
	}

	job, err := e.store.GetJob(ctx, cand.JobID)
	if err != nil {
		return nil, err
	}

	status := store.StatusHRRoundScheduled
	upd := store.CandidateUpdate{
		MeetingLink: &meetingLink,
		MeetingTime: &meetingTime,
		Status:      &status,
	}
	if err := e.store.UpdateCandidate(ctx, candidateID, upd); err != nil {
		return nil, err
	}

	meeting := &notify.MeetingDetails{Link: meetingLink, Time: meetingTime}
	if err := e.notifier.Send(ctx, notify.MeetingInvite, cand.Name, cand.Email, job.Title, meeting); err != nil {
		log.Printf("[Engine] meeting invite to %s failed: %v", cand.Email, err)
	}

	cand.MeetingLink = meetingLink
	cand.MeetingTime = &meetingTime
	cand.Status = status
	return cand, nil
}

// Finalize records the admin's verdict after the HR round: HIRE moves the
// candidate to HIRED and sends the offer letter, REJECT moves to
// REJECTED_FINAL and sends the rejection. Both are terminal.
func (e *Engine) Finalize(ctx context.Context, candidateID int64, decision Decision) (*store.Candidate, error) {
	var status string
	var kind notify.TemplateKind
	switch decision {
	case DecisionHire:
		status = store.StatusHired
		kind = notify.Offer
	case DecisionReject:
		status = store.StatusRejectedFinal
		kind = notify.Rejection
	default:
		return nil, fmt.Errorf("unknown decision %q (want HIRE or REJECT)", decision)
	}

	cand, err := e.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if cand.Status != store.StatusHRRoundScheduled {
		return nil, fmt.Errorf("%w: finalize requires HR_ROUND_SCHEDULED, candidate %d is %s",
			ErrInvalidTransition, candidateID, cand.Status)
	}

	job, err := e.store.GetJob(ctx, cand.JobID)
	if err != nil {
		return nil, err
	}

	upd := store.CandidateUpdate{Status: &status}
	if err := e.store.UpdateCandidate(ctx, candidateID, upd); err != nil {
		return nil, err
	}

	if err := e.notifier.Send(ctx, kind, cand.Name, cand.Email, job.Title, nil); err != nil {
		log.Printf("[Engine] %s email to %s failed: %v", kind, cand.Email, err)
	}

	cand.Status = status
	return cand, nil
}

func appendNote(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + "; " + extra
}
