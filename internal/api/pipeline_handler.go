package api

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"hireos/internal/pipeline"
)

// ScreenHandler runs resume screening for a job
// @Summary Screen resumes
// @Description Score every APPLIED candidate and move each to SHORTLISTED or REJECTED
// @Tags pipeline
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} pipeline.Report
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id}/screen [post]
func (a *API) ScreenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID, ok := pathID(w, r, "/api/jobs/")
	if !ok {
		return
	}

	report, err := a.engine.ScreenResumes(r.Context(), jobID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// EvaluateHandler runs interview evaluation for a job
// @Summary Evaluate interviews
// @Description Grade every completed interview and move each candidate to FINALIST or REJECTED
// @Tags pipeline
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} pipeline.Report
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id}/evaluate [post]
func (a *API) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID, ok := pathID(w, r, "/api/jobs/")
	if !ok {
		return
	}

	report, err := a.engine.EvaluateInterviews(r.Context(), jobID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type scheduleHRRequest struct {
	MeetingLink string    `json:"meeting_link"`
	MeetingTime time.Time `json:"meeting_time"`
}

// ScheduleHRHandler books the HR round for a finalist
// @Summary Schedule HR round
// @Description Store meeting details, move the candidate to HR_ROUND_SCHEDULED and email the invite
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param meeting body scheduleHRRequest true "Meeting details"
// @Success 200 {object} store.Candidate
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /candidates/{id}/schedule-hr [post]
func (a *API) ScheduleHRHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candID, ok := pathID(w, r, "/api/candidates/")
	if !ok {
		return
	}

	var req scheduleHRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.MeetingLink == "" {
		writeError(w, http.StatusBadRequest, "meeting_link is required")
		return
	}
	if req.MeetingTime.IsZero() {
		writeError(w, http.StatusBadRequest, "meeting_time is required")
		return
	}

	cand, err := a.engine.ScheduleHR(r.Context(), candID, req.MeetingLink, req.MeetingTime)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	log.Printf("[API] HR round scheduled for candidate %d at %s", cand.ID, req.MeetingTime.Format(time.RFC3339))
	writeJSON(w, http.StatusOK, cand)
}

type finalizeRequest struct {
	Decision string `json:"decision"` // "HIRE" or "REJECT"
}

// FinalizeHandler records the final hiring decision
// @Summary Finalize candidate
// @Description Apply the admin's HIRE or REJECT verdict after the HR round
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param decision body finalizeRequest true "Final decision"
// @Success 200 {object} store.Candidate
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /candidates/{id}/finalize [post]
func (a *API) FinalizeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candID, ok := pathID(w, r, "/api/candidates/")
	if !ok {
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	decision := pipeline.Decision(req.Decision)
	if decision != pipeline.DecisionHire && decision != pipeline.DecisionReject {
		writeError(w, http.StatusBadRequest, "decision must be HIRE or REJECT")
		return
	}

	cand, err := a.engine.Finalize(r.Context(), candID, decision)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	log.Printf("[API] candidate %d finalized: %s", cand.ID, cand.Status)
	writeJSON(w, http.StatusOK, cand)
}
