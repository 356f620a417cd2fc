package api

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Job endpoints
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			a.CreateJobHandler(w, r)
		case http.MethodGet:
			a.ListJobsHandler(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/jobs/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/apply"):
			a.ApplyHandler(w, r)
		case strings.HasSuffix(r.URL.Path, "/screen"):
			a.ScreenHandler(w, r)
		case strings.HasSuffix(r.URL.Path, "/evaluate"):
			a.EvaluateHandler(w, r)
		case strings.HasSuffix(r.URL.Path, "/close"):
			a.CloseJobHandler(w, r)
		default:
			a.JobHandler(w, r)
		}
	})

	// Candidate endpoints
	mux.HandleFunc("/api/candidates", a.ListCandidatesHandler)
	mux.HandleFunc("/api/candidates/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/schedule-hr"):
			a.ScheduleHRHandler(w, r)
		case strings.HasSuffix(r.URL.Path, "/finalize"):
			a.FinalizeHandler(w, r)
		default:
			a.CandidateHandler(w, r)
		}
	})

	// Interview portal endpoints
	mux.HandleFunc("/api/interview/start", a.InterviewStartHandler)
	mux.HandleFunc("/api/interview/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/message"):
			a.InterviewMessageHandler(w, r)
		case strings.HasSuffix(r.URL.Path, "/finish"):
			a.InterviewFinishHandler(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	return mux
}
