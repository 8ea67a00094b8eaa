package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/acourtney/travel-booklet/internal/domain"
)

// errorResponse is the body of every non-2xx reply. Errors is present only
// for validation failures, carrying one entry per violated field.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// writeJSON encodes v with the given status. Encoding failures are logged,
// not surfaced; the status line has already been written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a pipeline error to its HTTP status and body:
// ValidationError → 400 with the field list, ErrNotFound → 404, upstream
// and generation failures → 500 with the error message. Anything
// unrecognized is logged and answered with a generic 500 so internal detail
// does not leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Validation error",
			Errors:  verr.Fields,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Booklet not found"})
		return
	}

	var (
		ue *domain.UpstreamError
		ge *domain.GenerationError
	)
	if errors.As(err, &ue) || errors.As(err, &ge) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}

	slog.ErrorContext(r.Context(), "unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "An unknown error occurred"})
}
