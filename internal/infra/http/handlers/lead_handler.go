package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/infra/http/middleware"
	"github.com/gmfernandes/leadflow/internal/usecase"
)

type LeadHandler struct {
	CaptureUC  *usecase.CaptureLeadUseCase
	UpdateUC   *usecase.UpdateLeadUseCase
	Leads      usecase.LeadRepository
	PostMsgUC  *usecase.PostMessageUseCase
	MarkReadUC *usecase.MarkMessageReadUseCase
	Messages   usecase.MessageRepository
}

func NewLeadHandler(capture *usecase.CaptureLeadUseCase, update *usecase.UpdateLeadUseCase, leads usecase.LeadRepository, postMsg *usecase.PostMessageUseCase, markRead *usecase.MarkMessageReadUseCase, messages usecase.MessageRepository) *LeadHandler {
	return &LeadHandler{
		CaptureUC:  capture,
		UpdateUC:   update,
		Leads:      leads,
		PostMsgUC:  postMsg,
		MarkReadUC: markRead,
		Messages:   messages,
	}
}

func (h *LeadHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	lead, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "lead", err)
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "leadId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return
	}

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, "lead", err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var status *entity.LeadStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := entity.LeadStatus(raw)
		if !s.Valid() {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status filter"})
			return
		}
		status = &s
	}

	leads, err := h.Leads.ListByBusinessID(r.Context(), businessID, status)
	if err != nil {
		writeError(w, "lead", err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "leadId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "lead", err)
		return
	}

	if lead.Status == entity.LeadStatusConverted && input.Status.HasValue() {
		middleware.RecordLeadConverted()
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	leadID, err := pathID(r, "leadId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return
	}
	input.LeadID = leadID

	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := parseInt64(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
			return
		}
		userID = &id
	}

	message, err := h.PostMsgUC.Execute(r.Context(), userID, input)
	if err != nil {
		writeError(w, "message", err)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

func (h *LeadHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	leadID, err := pathID(r, "leadId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return
	}

	messages, err := h.Messages.ListByLeadID(r.Context(), leadID)
	if err != nil {
		writeError(w, "message", err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *LeadHandler) HandleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "messageId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid message id"})
		return
	}

	if err := h.MarkReadUC.Execute(r.Context(), id); err != nil {
		writeError(w, "message", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
