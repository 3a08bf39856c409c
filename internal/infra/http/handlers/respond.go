package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/infra/http/middleware"
	"github.com/gmfernandes/leadflow/internal/usecase"
)

type errorResponse struct {
	Error  string                    `json:"error"`
	Fields []usecase.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto HTTP statuses. Field-level validation
// and broken references come back as 422, uniqueness conflicts as 409.
// Validation rejections are counted per resource.
func writeError(w http.ResponseWriter, resource string, err error) {
	var vErrs usecase.ValidationErrors
	if errors.As(err, &vErrs) {
		middleware.RecordValidationFailure(resource)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: vErrs,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, entity.ErrEmailAlreadyExists),
		errors.Is(err, entity.ErrBusinessExists),
		errors.Is(err, entity.ErrDuplicateLead):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrReferencedRowMissing),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrPriceRange):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadJSON(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
