package store

import "time"

// Job statuses. A job stays OPEN past its deadline; the deadline only gates
// candidate screening, it never closes the job by itself.
const (
	JobOpen   = "OPEN"
	JobClosed = "CLOSED"
)

// Candidate lifecycle statuses.
//
//	APPLIED -> SHORTLISTED | REJECTED            (resume screening)
//	SHORTLISTED -> INTERVIEW_PENDING -> INTERVIEW_COMPLETED
//	INTERVIEW_COMPLETED -> FINALIST | REJECTED   (interview evaluation)
//	FINALIST -> HR_ROUND_SCHEDULED
//	HR_ROUND_SCHEDULED -> HIRED | REJECTED_FINAL
//
// HIRED, REJECTED and REJECTED_FINAL are terminal.
const (
	StatusApplied            = "APPLIED"
	StatusShortlisted        = "SHORTLISTED"
	StatusInterviewPending   = "INTERVIEW_PENDING"
	StatusInterviewCompleted = "INTERVIEW_COMPLETED"
	StatusFinalist           = "FINALIST"
	StatusHRRoundScheduled   = "HR_ROUND_SCHEDULED"
	StatusHired              = "HIRED"
	StatusRejected           = "REJECTED"
	StatusRejectedFinal      = "REJECTED_FINAL"
)

type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Status       string    `json:"status"`
	Deadline     time.Time `json:"deadline"`
	AutoScreened bool      `json:"auto_screened"`
	CreatedAt    time.Time `json:"created_at"`
}

type Candidate struct {
	ID                int64      `json:"id"`
	JobID             int64      `json:"job_id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	ResumePath        string     `json:"resume_path"`
	ResumeScore       int        `json:"resume_score"`
	ResumeSummary     string     `json:"resume_summary,omitempty"`
	TranscriptPath    string     `json:"interview_transcript_path,omitempty"`
	InterviewScore    int        `json:"interview_score"`
	InterviewFeedback string     `json:"interview_feedback,omitempty"`
	MeetingLink       string     `json:"meeting_link,omitempty"`
	MeetingTime       *time.Time `json:"meeting_time,omitempty"`
	Status            string     `json:"status"`
	AppliedAt         time.Time  `json:"applied_at"`
}

// CandidateJob is a candidate joined with its job, used by the interview
// portal login which only knows the candidate's email.
type CandidateJob struct {
	Candidate
	JobTitle        string `json:"job_title"`
	JobRequirements string `json:"job_requirements"`
}

// CandidateUpdate carries a partial update; nil fields are left untouched.
type CandidateUpdate struct {
	ResumeScore       *int
	ResumeSummary     *string
	TranscriptPath    *string
	InterviewScore    *int
	InterviewFeedback *string
	MeetingLink       *string
	MeetingTime       *time.Time
	Status            *string
}
