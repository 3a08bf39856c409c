package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type PlatformAccountHandler struct {
	CreateUC *usecase.CreatePlatformAccountUseCase
	UpdateUC *usecase.UpdatePlatformAccountUseCase
	Accounts usecase.PlatformAccountRepository
}

func NewPlatformAccountHandler(create *usecase.CreatePlatformAccountUseCase, update *usecase.UpdatePlatformAccountUseCase, accounts usecase.PlatformAccountRepository) *PlatformAccountHandler {
	return &PlatformAccountHandler{CreateUC: create, UpdateUC: update, Accounts: accounts}
}

func (h *PlatformAccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.CreatePlatformAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	account, err := h.CreateUC.Execute(r.Context(), businessID, input)
	if err != nil {
		writeError(w, "platform_account", err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

func (h *PlatformAccountHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	accounts, err := h.Accounts.ListByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "platform_account", err)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

func (h *PlatformAccountHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account id"})
		return
	}

	var input usecase.UpdatePlatformAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	account, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "platform_account", err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}
