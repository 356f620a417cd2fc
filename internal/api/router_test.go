package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(NewAPI(nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
}

func TestPathID(t *testing.T) {
	cases := []struct {
		path   string
		prefix string
		want   int64
		ok     bool
	}{
		{"/api/jobs/42", "/api/jobs/", 42, true},
		{"/api/jobs/42/close", "/api/jobs/", 42, true},
		{"/api/candidates/7/finalize", "/api/candidates/", 7, true},
		{"/api/jobs/abc", "/api/jobs/", 0, false},
		{"/api/jobs/", "/api/jobs/", 0, false},
		{"/api/jobs/-1", "/api/jobs/", 0, false},
		{"/api/jobs/0", "/api/jobs/", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			id, ok := pathID(rec, req, tc.prefix)
			if ok != tc.ok || id != tc.want {
				t.Fatalf("pathID(%s) = (%d, %v), want (%d, %v)", tc.path, id, ok, tc.want, tc.ok)
			}
			if !tc.ok && rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
