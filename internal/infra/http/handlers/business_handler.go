package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type BusinessHandler struct {
	CreateUC   *usecase.CreateBusinessUseCase
	UpdateUC   *usecase.UpdateBusinessUseCase
	Businesses usecase.BusinessRepository
}

func NewBusinessHandler(create *usecase.CreateBusinessUseCase, update *usecase.UpdateBusinessUseCase, businesses usecase.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{CreateUC: create, UpdateUC: update, Businesses: businesses}
}

func (h *BusinessHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	var input usecase.CreateBusinessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	business, err := h.CreateUC.Execute(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, "business", err)
		return
	}

	writeJSON(w, http.StatusCreated, business)
}

func (h *BusinessHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	business, err := h.Businesses.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, "business", err)
		return
	}

	writeJSON(w, http.StatusOK, business)
}

func (h *BusinessHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.UpdateBusinessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	business, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "business", err)
		return
	}

	writeJSON(w, http.StatusOK, business)
}
