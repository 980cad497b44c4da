package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tally/internal/contract"
	"tally/internal/repository"
	"tally/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, contract.ErrorDetail{Detail: detail})
}

// writeError maps service and repository errors onto the HTTP contract.
func writeError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeDetail(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrActiveSessionExists):
		writeDetail(w, http.StatusConflict, "Active session exists")
	case errors.Is(err, service.ErrSessionNotRunning):
		writeDetail(w, http.StatusBadRequest, "Session is not running")
	case errors.Is(err, service.ErrSessionNotPaused):
		writeDetail(w, http.StatusBadRequest, "Session is not paused")
	case errors.Is(err, service.ErrSessionFinished):
		writeDetail(w, http.StatusBadRequest, "Session already finished")
	case errors.Is(err, repository.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Not found")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		writeDetail(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

// pageParams reads limit/offset query parameters, applying the endpoint's
// default and cap.
func pageParams(r *http.Request, def, maxLimit int) (limit, offset int) {
	limit = def
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
