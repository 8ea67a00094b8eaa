package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acourtney/travel-booklet/internal/domain"
)

// CreateBooklet handles POST /api/booklets. It decodes the submitted
// preferences, runs the generation pipeline, and returns the full stored
// record on success. Validation failures return 400 with field-scoped
// messages; upstream and generation failures return 500.
func (s *Server) CreateBooklet(w http.ResponseWriter, r *http.Request) {
	var input domain.PreferencesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	created, err := s.booklets.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// GetBooklet handles GET /api/booklets/{id}.
func (s *Server) GetBooklet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid ID format"})
		return
	}

	rec, err := s.booklets.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
