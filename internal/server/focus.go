package server

import (
	"context"
	"net/http"

	"tally/internal/contract"
	"tally/internal/domain"
)

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var payload contract.SessionCreate
	if !decodeJSON(w, r, &payload) {
		return
	}

	session, err := s.focus.Start(r.Context(), payload.GoalID, payload.DurationSeconds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.SessionFromDomain(session))
}

func (s *Server) handleSessionCurrent(w http.ResponseWriter, r *http.Request) {
	session, err := s.focus.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, contract.SessionFromDomain(session))
}

func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 50, 200)
	sessions, total, err := s.focus.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]contract.Session, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, contract.SessionFromDomain(sess))
	}
	writeJSON(w, http.StatusOK, contract.SessionList{Items: items, Total: total})
}

func (s *Server) handleSessionPause(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.focus.Pause)
}

func (s *Server) handleSessionResume(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.focus.Resume)
}

func (s *Server) handleSessionCancel(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.focus.Cancel)
}

func (s *Server) handleSessionComplete(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.focus.Complete)
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) (*domain.FocusSession, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	session, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SessionFromDomain(session))
}
