package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hireos/internal/document"
	"hireos/internal/store"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ApplyHandler accepts a job application with a resume upload
// @Summary Apply to a job
// @Description Submit name, email, phone and a resume file (PDF, DOCX or TXT) for an open job
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Job ID"
// @Param name formData string true "Candidate name"
// @Param email formData string true "Candidate email"
// @Param phone formData string false "Candidate phone"
// @Param resume formData file true "Resume file"
// @Success 201 {object} store.Candidate
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id}/apply [post]
func (a *API) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID, ok := pathID(w, r, "/api/jobs/")
	if !ok {
		return
	}

	job, err := a.db.GetJob(r.Context(), jobID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if job.Status != store.JobOpen {
		writeError(w, http.StatusConflict, "job is closed to new applications")
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))

	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !emailRe.MatchString(email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no resume uploaded")
		return
	}
	defer file.Close()

	if !document.AllowedUpload(header.Filename) {
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, TXT)")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read resume")
		return
	}

	// Store under a generated name so uploads cannot collide or clobber.
	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	resumePath, err := a.blobs.Put(r.Context(), "resumes", objectName, data)
	if err != nil {
		log.Printf("[API] failed to store resume: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	cand, err := a.db.CreateCandidate(r.Context(), jobID, name, email, phone, resumePath)
	if err != nil {
		// The application did not go through, so the stored resume is
		// orphaned; clean it up.
		if delErr := a.blobs.Delete(r.Context(), resumePath); delErr != nil {
			log.Printf("[API] failed to remove orphaned resume %s: %v", resumePath, delErr)
		}
		handleDomainError(w, err)
		return
	}

	log.Printf("[API] candidate %d (%s) applied to job %d", cand.ID, cand.Email, jobID)
	writeJSON(w, http.StatusCreated, cand)
}

// CandidateHandler fetches one candidate by ID
// @Summary Get candidate
// @Description Fetch a candidate's full record including scores and status
// @Tags candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} store.Candidate
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [get]
func (a *API) CandidateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := pathID(w, r, "/api/candidates/")
	if !ok {
		return
	}

	cand, err := a.db.GetCandidate(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cand)
}

// ListCandidatesHandler lists a job's candidates
// @Summary List candidates
// @Description List candidates for a job, optionally filtered by status
// @Tags candidates
// @Produce json
// @Param job_id query int true "Job ID"
// @Param status query string false "Filter by candidate status"
// @Success 200 {array} store.Candidate
// @Failure 400 {object} map[string]string
// @Router /candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID, err := strconv.ParseInt(r.URL.Query().Get("job_id"), 10, 64)
	if err != nil || jobID <= 0 {
		writeError(w, http.StatusBadRequest, "job_id is required")
		return
	}

	var statuses []string
	if s := r.URL.Query().Get("status"); s != "" {
		statuses = append(statuses, s)
	}

	candidates, err := a.db.ListCandidates(r.Context(), jobID, statuses...)
	if err != nil {
		log.Printf("[API] failed to list candidates: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}
	if candidates == nil {
		candidates = []*store.Candidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}
