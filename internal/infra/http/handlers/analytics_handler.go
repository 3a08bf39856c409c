package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/usecase"
)

type AnalyticsHandler struct {
	UpsertUC  *usecase.UpsertAnalyticsUseCase
	GetUC     *usecase.GetAnalyticsUseCase
	Analytics usecase.AnalyticsRepository
}

func NewAnalyticsHandler(upsert *usecase.UpsertAnalyticsUseCase, get *usecase.GetAnalyticsUseCase, analytics usecase.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{UpsertUC: upsert, GetUC: get, Analytics: analytics}
}

func (h *AnalyticsHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.UpsertAnalyticsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}
	input.BusinessID = businessID

	snapshot, err := h.UpsertUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "analytics", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// HandleGet serves a single daily bucket: ?date=YYYY-MM-DD&platform=thumbtack.
// The platform parameter is optional; absent means the aggregate bucket.
func (h *AnalyticsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid or missing date, want YYYY-MM-DD"})
		return
	}

	var platform *entity.PlatformType
	if raw := r.URL.Query().Get("platform"); raw != "" {
		p := entity.PlatformType(raw)
		if !p.Valid() {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid platform"})
			return
		}
		platform = &p
	}

	snapshot, err := h.GetUC.Execute(r.Context(), businessID, date, platform)
	if err != nil {
		writeError(w, "analytics", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (h *AnalyticsHandler) HandleListRange(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid or missing from date"})
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid or missing to date"})
		return
	}

	snapshots, err := h.Analytics.ListByBusinessID(r.Context(), businessID, from, to)
	if err != nil {
		writeError(w, "analytics", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshots)
}
