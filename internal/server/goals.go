package server

import (
	"net/http"

	"tally/internal/contract"
	"tally/internal/domain"
	"tally/internal/service"
)

func (s *Server) handleGoalCreate(w http.ResponseWriter, r *http.Request) {
	var payload contract.GoalCreate
	if !decodeJSON(w, r, &payload) {
		return
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}
	goal := &domain.Goal{
		Name:     payload.Name,
		GoalType: domain.GoalType(payload.GoalType),
		IsActive: isActive,
	}
	if err := s.goals.Create(r.Context(), goal); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.GoalFromDomain(goal))
}

func (s *Server) handleGoalList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 50, 200)
	goals, total, err := s.goals.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]contract.Goal, 0, len(goals))
	for _, g := range goals {
		items = append(items, contract.GoalFromDomain(g))
	}
	writeJSON(w, http.StatusOK, contract.GoalList{Items: items, Total: total})
}

func (s *Server) handleGoalGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	goal, err := s.goals.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.GoalFromDomain(goal))
}

func (s *Server) handleGoalUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload contract.GoalUpdate
	if !decodeJSON(w, r, &payload) {
		return
	}

	upd := service.GoalUpdate{Name: payload.Name, IsActive: payload.IsActive}
	if payload.GoalType != nil {
		gt := domain.GoalType(*payload.GoalType)
		upd.GoalType = &gt
	}
	goal, err := s.goals.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.GoalFromDomain(goal))
}

func (s *Server) handleGoalDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.goals.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoalHeatmap(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	days, err := s.goals.Heatmap(r.Context(), id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	values := make([]contract.HeatmapDay, 0, len(days))
	for _, d := range days {
		values = append(values, contract.HeatmapDay{Date: d.Date, Count: d.Count})
	}
	writeJSON(w, http.StatusOK, contract.Heatmap{
		GoalID: id,
		From:   from,
		To:     to,
		Unit:   "day",
		Values: values,
	})
}

func (s *Server) handleRevisionCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload contract.RevisionCreate
	if !decodeJSON(w, r, &payload) {
		return
	}

	rev, err := s.revisions.Create(r.Context(), id, payload.TargetValue, payload.ValidFrom, payload.ValidTo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.RevisionFromDomain(rev))
}

func (s *Server) handleRevisionList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	revisions, total, err := s.revisions.List(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]contract.Revision, 0, len(revisions))
	for _, rev := range revisions {
		items = append(items, contract.RevisionFromDomain(rev))
	}
	writeJSON(w, http.StatusOK, contract.RevisionList{Items: items, Total: total})
}
