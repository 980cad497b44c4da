package server

import (
	"net/http"

	"tally/internal/contract"
	"tally/internal/domain"
)

func (s *Server) handleLogCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload contract.LogCreate
	if !decodeJSON(w, r, &payload) {
		return
	}

	log, err := s.logs.Create(r.Context(), id, payload.Date, payload.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.LogFromDomain(log))
}

func (s *Server) handleLogListByGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, offset := pageParams(r, 100, 500)
	logs, total, err := s.logs.ListByGoal(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logList(logs, total))
}

func (s *Server) handleLogListByRange(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 200, 500)
	q := r.URL.Query()
	logs, total, err := s.logs.ListByRange(r.Context(), q.Get("start_date"), q.Get("end_date"), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logList(logs, total))
}

func (s *Server) handleLogUpdate(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "logID")
	if !ok {
		return
	}
	var payload contract.LogUpdate
	if !decodeJSON(w, r, &payload) {
		return
	}

	log, err := s.logs.UpdateValue(r.Context(), goalID, logID, payload.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.LogFromDomain(log))
}

func (s *Server) handleLogDelete(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "logID")
	if !ok {
		return
	}
	if err := s.logs.Delete(r.Context(), goalID, logID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func logList(logs []*domain.GoalLog, total int) contract.LogList {
	items := make([]contract.Log, 0, len(logs))
	for _, l := range logs {
		items = append(items, contract.LogFromDomain(l))
	}
	return contract.LogList{Items: items, Total: total}
}
