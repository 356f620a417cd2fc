package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"hireos/internal/store"
)

type createJobRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Requirements  string `json:"requirements"`
	WindowMinutes int    `json:"window_minutes"`
}

// CreateJobHandler opens a new job posting
// @Summary Create job
// @Description Create a job opening with an application window in minutes
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body createJobRequest true "Job details"
// @Success 201 {object} store.Job
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs [post]
func (a *API) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.WindowMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "window_minutes must be positive")
		return
	}

	job, err := a.db.CreateJob(r.Context(), req.Title, req.Description, req.Requirements, req.WindowMinutes)
	if err != nil {
		log.Printf("[API] failed to create job: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	log.Printf("[API] created job %d (%s), window closes %s", job.ID, job.Title, job.Deadline.Format("2006-01-02 15:04:05"))
	writeJSON(w, http.StatusCreated, job)
}

// ListJobsHandler lists job postings
// @Summary List jobs
// @Description List job openings, optionally filtered by status
// @Tags jobs
// @Produce json
// @Param status query string false "Filter by status (OPEN or CLOSED)"
// @Success 200 {array} store.Job
// @Failure 500 {object} map[string]string
// @Router /jobs [get]
func (a *API) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobs, err := a.db.ListJobs(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("[API] failed to list jobs: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []*store.Job{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

// JobHandler fetches or deletes one job by ID
// @Summary Get or delete a job
// @Description GET returns the job with its candidates; DELETE removes the job and all its applications
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (a *API) JobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/jobs/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		job, err := a.db.GetJob(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		candidates, err := a.db.ListCandidates(r.Context(), id)
		if err != nil {
			log.Printf("[API] failed to list candidates for job %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to list candidates")
			return
		}
		if candidates == nil {
			candidates = []*store.Candidate{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"job":        job,
			"candidates": candidates,
		})

	case http.MethodDelete:
		if err := a.db.DeleteJob(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// CloseJobHandler closes an opening to new applications
// @Summary Close job
// @Description Mark a job CLOSED; existing candidates are kept
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id}/close [post]
func (a *API) CloseJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := pathID(w, r, "/api/jobs/")
	if !ok {
		return
	}

	if err := a.db.CloseJob(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	log.Printf("[API] closed job %d", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// pathID parses the numeric ID segment following prefix. Trailing segments
// like "/close" are ignored.
func pathID(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
