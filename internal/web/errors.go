package web

// errors.go maps domain errors onto HTTP responses. The technical error is
// logged server-side with the request ID; the client gets a JSON body with
// a stable machine-readable code.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pautaops/pauta/internal/edit"
	"github.com/pautaops/pauta/internal/logging"
	"github.com/pautaops/pauta/internal/store"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError logs err and writes the mapped JSON error response.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Code: code})
}

// classify maps an error to its HTTP status and stable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, edit.ErrSaveInProgress):
		return http.StatusConflict, "save_in_progress"
	case errors.Is(err, edit.ErrSessionOpen):
		return http.StatusConflict, "edit_in_progress"
	case errors.Is(err, edit.ErrNoSession):
		return http.StatusConflict, "no_edit_session"
	case errors.Is(err, edit.ErrReadOnlyField):
		return http.StatusUnprocessableEntity, "read_only_field"
	case errors.Is(err, edit.ErrUnknownField):
		return http.StatusUnprocessableEntity, "unknown_field"
	default:
		return http.StatusBadGateway, "storage_failure"
	}
}

// respondBadRequest reports malformed client input.
func respondBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	logging.FromContext(r.Context()).Warn("bad request", "path", r.URL.Path, "reason", msg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Code: "bad_request"})
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
