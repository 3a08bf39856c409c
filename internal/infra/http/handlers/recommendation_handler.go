package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type RecommendationHandler struct {
	CreateUC        *usecase.CreateRecommendationUseCase
	DismissUC       *usecase.DismissRecommendationUseCase
	Recommendations usecase.RecommendationRepository
}

func NewRecommendationHandler(create *usecase.CreateRecommendationUseCase, dismiss *usecase.DismissRecommendationUseCase, recommendations usecase.RecommendationRepository) *RecommendationHandler {
	return &RecommendationHandler{CreateUC: create, DismissUC: dismiss, Recommendations: recommendations}
}

func (h *RecommendationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.CreateRecommendationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}
	input.BusinessID = businessID

	rec, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "recommendation", err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *RecommendationHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	recs, err := h.Recommendations.ListActiveByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "recommendation", err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

func (h *RecommendationHandler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "recommendationId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid recommendation id"})
		return
	}

	rec, err := h.DismissUC.Execute(r.Context(), id)
	if err != nil {
		writeError(w, "recommendation", err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
