// Package server exposes the habit and focus tracking REST API over SQLite.
package server

import (
	"net/http"

	"tally/internal/logger"
	"tally/internal/service"
)

type Server struct {
	goals     service.GoalService
	revisions service.RevisionService
	logs      service.LogService
	focus     service.FocusService
	log       *logger.Logger
}

func New(goals service.GoalService, revisions service.RevisionService, logs service.LogService, focus service.FocusService, log *logger.Logger) *Server {
	return &Server{goals: goals, revisions: revisions, logs: logs, focus: focus, log: log}
}

// Handler builds the routing table and wraps it in the middleware chain:
// request ID, then recovery, then request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("POST /goals", s.handleGoalCreate)
	mux.HandleFunc("GET /goals", s.handleGoalList)
	mux.HandleFunc("GET /goals/{id}", s.handleGoalGet)
	mux.HandleFunc("PATCH /goals/{id}", s.handleGoalUpdate)
	mux.HandleFunc("DELETE /goals/{id}", s.handleGoalDelete)
	mux.HandleFunc("GET /goals/{id}/heatmap", s.handleGoalHeatmap)

	mux.HandleFunc("GET /goals/{id}/revisions", s.handleRevisionList)
	mux.HandleFunc("POST /goals/{id}/revisions", s.handleRevisionCreate)

	mux.HandleFunc("POST /goals/{id}/logs", s.handleLogCreate)
	mux.HandleFunc("GET /goals/{id}/logs", s.handleLogListByGoal)
	mux.HandleFunc("PATCH /goals/{id}/logs/{logID}", s.handleLogUpdate)
	mux.HandleFunc("DELETE /goals/{id}/logs/{logID}", s.handleLogDelete)
	mux.HandleFunc("GET /logs", s.handleLogListByRange)

	mux.HandleFunc("POST /focus/sessions", s.handleSessionCreate)
	mux.HandleFunc("GET /focus/sessions", s.handleSessionList)
	mux.HandleFunc("GET /focus/sessions/current", s.handleSessionCurrent)
	mux.HandleFunc("POST /focus/sessions/{id}/pause", s.handleSessionPause)
	mux.HandleFunc("POST /focus/sessions/{id}/resume", s.handleSessionResume)
	mux.HandleFunc("POST /focus/sessions/{id}/cancel", s.handleSessionCancel)
	mux.HandleFunc("POST /focus/sessions/{id}/complete", s.handleSessionComplete)

	return RequestID(Recovery(s.log)(Logging(s.log)(mux)))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
