package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type ServiceHandler struct {
	CreateUC *usecase.CreateServiceUseCase
	UpdateUC *usecase.UpdateServiceUseCase
	Services usecase.ServiceRepository
}

func NewServiceHandler(create *usecase.CreateServiceUseCase, update *usecase.UpdateServiceUseCase, services usecase.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{CreateUC: create, UpdateUC: update, Services: services}
}

func (h *ServiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.CreateServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	service, err := h.CreateUC.Execute(r.Context(), businessID, input)
	if err != nil {
		writeError(w, "service", err)
		return
	}

	writeJSON(w, http.StatusCreated, service)
}

func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	services, err := h.Services.ListByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "service", err)
		return
	}

	writeJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "serviceId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid service id"})
		return
	}

	var input usecase.UpdateServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	service, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "service", err)
		return
	}

	writeJSON(w, http.StatusOK, service)
}
