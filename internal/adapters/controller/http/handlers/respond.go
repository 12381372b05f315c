package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/pkg/logger/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps domain errors to status codes. Remote failures are logged
// and surfaced as a generic message, never classified or retried.
func writeError(w http.ResponseWriter, logger *types.Logger, err error) {
	switch {
	case errors.Is(err, errorz.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, errorz.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, errorz.ErrUnauthorized), errors.Is(err, errorz.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, errorz.ErrEmailTaken), errors.Is(err, errorz.ErrEventFinished):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Errorf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "something went wrong, please try again"})
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errorz.ErrValidation
	}
	return nil
}
