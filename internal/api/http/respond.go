package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/repository"
	"autoloc-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondServiceError maps service and repository errors onto HTTP status
// codes. Unrecognized errors become opaque 500s; the detail goes to the log,
// not the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNotRevenueShare):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTerminalState),
		errors.Is(err, service.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Internal error handling request", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
