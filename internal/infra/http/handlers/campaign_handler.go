package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type CampaignHandler struct {
	CreateUC  *usecase.CreateCampaignUseCase
	UpdateUC  *usecase.UpdateCampaignUseCase
	Campaigns usecase.CampaignRepository
}

func NewCampaignHandler(create *usecase.CreateCampaignUseCase, update *usecase.UpdateCampaignUseCase, campaigns usecase.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{CreateUC: create, UpdateUC: update, Campaigns: campaigns}
}

func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	campaign, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "campaign", err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account id"})
		return
	}

	campaigns, err := h.Campaigns.ListByPlatformAccountID(r.Context(), accountID)
	if err != nil {
		writeError(w, "campaign", err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}

	var input usecase.UpdateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	campaign, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "campaign", err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}
