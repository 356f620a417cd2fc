package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type interviewStartRequest struct {
	Email string `json:"email"`
}

// InterviewStartHandler opens an interview session
// @Summary Start interview
// @Description Start (or restart) the chat interview for a shortlisted candidate, identified by email
// @Tags interview
// @Accept json
// @Produce json
// @Param login body interviewStartRequest true "Candidate email"
// @Success 200 {object} interview.StartResult
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /interview/start [post]
func (a *API) InterviewStartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req interviewStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	res, err := a.interviews.Start(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type interviewMessageRequest struct {
	Message string `json:"message"`
}

// InterviewMessageHandler relays one chat turn
// @Summary Send interview message
// @Description Send the candidate's answer and get the interviewer's next question
// @Tags interview
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param message body interviewMessageRequest true "Candidate message"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /interview/{id}/message [post]
func (a *API) InterviewMessageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candID, ok := pathID(w, r, "/api/interview/")
	if !ok {
		return
	}

	var req interviewMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.interviews.Message(r.Context(), candID, req.Message)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// InterviewFinishHandler ends the interview
// @Summary Finish interview
// @Description Persist the transcript and mark the candidate INTERVIEW_COMPLETED
// @Tags interview
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /interview/{id}/finish [post]
func (a *API) InterviewFinishHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candID, ok := pathID(w, r, "/api/interview/")
	if !ok {
		return
	}

	path, err := a.interviews.Finish(r.Context(), candID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":          "completed",
		"transcript_path": path,
	})
}
