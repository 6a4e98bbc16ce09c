package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	appLog "github.com/uselessgoddess/suns/log"
	"github.com/uselessgoddess/suns/plugin"
)

// Server HTTP API расписания.
//
//	GET /health
//	GET /api/departments
//	GET /api/schedule?spec=<код>&year=<курс с нуля>
type Server struct {
	plugin plugin.Plugin
	mux    *http.ServeMux
}

func NewServer(p plugin.Plugin) *Server {
	s := &Server{
		plugin: p,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe слушает addr до отмены ctx, потом даёт запросам 5 секунд на завершение
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/departments", s.handleDepartments)
	s.mux.HandleFunc("/api/schedule", s.handleSchedule)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, kindBadRequest, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.plugin.Departments())
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, kindBadRequest, "method not allowed")
		return
	}

	q := r.URL.Query()
	spec := q.Get("spec")
	if spec == "" {
		writeError(w, http.StatusBadRequest, kindBadRequest, "missing spec")
		return
	}
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 0 {
		writeError(w, http.StatusBadRequest, kindBadRequest, "year must be a non-negative integer")
		return
	}

	timetable, err := s.plugin.GetTimetable(r.Context(), spec, year)
	if err != nil {
		status, kind := classify(err)
		appLog.Error("schedule request failed", err, "spec", spec, "year", year, "kind", kind)
		writeError(w, status, kind, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, timetable)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}
