package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"hireos/internal/blob"
	"hireos/internal/interview"
	"hireos/internal/pipeline"
	"hireos/internal/store"
)

type API struct {
	db         *store.DB
	blobs      blob.Store
	engine     *pipeline.Engine
	interviews *interview.Manager
}

func NewAPI(db *store.DB, blobs blob.Store, engine *pipeline.Engine, interviews *interview.Manager) *API {
	return &API{
		db:         db,
		blobs:      blobs,
		engine:     engine,
		interviews: interviews,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleDomainError maps the domain sentinel errors onto HTTP statuses.
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicateApplication):
		writeError(w, http.StatusConflict, "an application with this email already exists for this job")
	case errors.Is(err, pipeline.ErrBatchInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pipeline.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, interview.ErrNotEligible),
		errors.Is(err, interview.ErrAlreadyInterviewed),
		errors.Is(err, interview.ErrNoSession):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
