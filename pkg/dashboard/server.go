// Package dashboard serves the browser UI and the JSON API around the
// checks runner and the evidence log.
package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/supacheck/pkg/checks"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/supabase"
)

// Server owns the Results record and the evidence log for one session.
// Runs are serialized: a second run request while one is in flight gets
// 409 rather than racing the first.
type Server struct {
	creds  supabase.Credentials
	runner *checks.Runner
	log    *evidence.Log

	runMu sync.Mutex

	mu      sync.RWMutex
	results checks.Results
}

func NewServer(creds supabase.Credentials) *Server {
	return &Server{
		creds:   creds,
		runner:  checks.NewRunner(),
		log:     evidence.NewLog(),
		results: checks.PendingResults(),
	}
}

// Routes builds the chi router for the dashboard.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/api/run", s.handleRun)
	r.Get("/api/results", s.handleResults)
	r.Get("/api/evidence", s.handleEvidence)
	r.Get("/api/evidence/export", s.handleExport)
	r.Delete("/api/evidence", s.handleClear)
	return r
}

// ListenAndServe starts the dashboard on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if !s.runMu.TryLock() {
		httpError(w, http.StatusConflict, "a run is already in progress")
		return
	}
	defer s.runMu.Unlock()

	results, entries, err := s.runner.RunAll(r.Context(), s.creds)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	s.log.Append(entries...)

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	results := s.results
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleEvidence(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.log.Entries())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "csv":
		data, err := s.log.ExportCSV()
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="evidence-log.csv"`)
		w.Write(data)
	case "json", "":
		data, err := s.log.ExportJSON()
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="evidence-log.json"`)
		w.Write(data)
	default:
		httpError(w, http.StatusBadRequest, "unknown export format; use json or csv")
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		httpError(w, http.StatusBadRequest, "clearing the evidence log is irreversible; pass confirm=true")
		return
	}
	s.log.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
