package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gmfernandes/leadflow/internal/entity"
	"github.com/gmfernandes/leadflow/internal/usecase"
)

type SubscriptionHandler struct {
	OpenUC        *usecase.OpenSubscriptionUseCase
	LifecycleUC   *usecase.SubscriptionLifecycleUseCase
	Subscriptions usecase.SubscriptionRepository
	RecordUC      *usecase.RecordPaymentUseCase
	SettleUC      *usecase.SettlePaymentUseCase
	Payments      usecase.PaymentRepository
}

func NewSubscriptionHandler(open *usecase.OpenSubscriptionUseCase, lifecycle *usecase.SubscriptionLifecycleUseCase, subscriptions usecase.SubscriptionRepository, record *usecase.RecordPaymentUseCase, settle *usecase.SettlePaymentUseCase, payments usecase.PaymentRepository) *SubscriptionHandler {
	return &SubscriptionHandler{
		OpenUC:        open,
		LifecycleUC:   lifecycle,
		Subscriptions: subscriptions,
		RecordUC:      record,
		SettleUC:      settle,
		Payments:      payments,
	}
}

func (h *SubscriptionHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	var input usecase.CreateSubscriptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	sub, err := h.OpenUC.Execute(r.Context(), businessID, input)
	if err != nil {
		writeError(w, "subscription", err)
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

func (h *SubscriptionHandler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid business id"})
		return
	}

	sub, err := h.Subscriptions.FindLastByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "subscription", err)
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

// HandleTransition serves cancel/suspend/resume/expire as one route with the
// action in the path.
func (h *SubscriptionHandler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "subscriptionId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subscription id"})
		return
	}

	var sub *entity.Subscription
	switch action := chi.URLParam(r, "action"); action {
	case "cancel":
		sub, err = h.LifecycleUC.Cancel(r.Context(), id)
	case "suspend":
		sub, err = h.LifecycleUC.Suspend(r.Context(), id)
	case "resume":
		sub, err = h.LifecycleUC.Resume(r.Context(), id)
	case "expire":
		sub, err = h.LifecycleUC.Expire(r.Context(), id)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown action: " + action})
		return
	}
	if err != nil {
		writeError(w, "subscription", err)
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) HandleRecordPayment(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := pathID(r, "subscriptionId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subscription id"})
		return
	}

	var input usecase.CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}
	input.SubscriptionID = subscriptionID

	payment, err := h.RecordUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "payment", err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

func (h *SubscriptionHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := pathID(r, "subscriptionId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subscription id"})
		return
	}

	payments, err := h.Payments.ListBySubscriptionID(r.Context(), subscriptionID)
	if err != nil {
		writeError(w, "payment", err)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

type settlePaymentRequest struct {
	Succeeded         bool           `json:"succeeded"`
	TransactionID     *string        `json:"transaction_id,omitempty"`
	ProcessorResponse entity.Payload `json:"processor_response,omitempty"`
}

func (h *SubscriptionHandler) HandleSettlePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payment id"})
		return
	}

	var req settlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, err)
		return
	}

	payment, err := h.SettleUC.Settle(r.Context(), id, req.Succeeded, req.TransactionID, req.ProcessorResponse)
	if err != nil {
		writeError(w, "payment", err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (h *SubscriptionHandler) HandleRefundPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payment id"})
		return
	}

	var req settlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, err)
		return
	}

	payment, err := h.SettleUC.Refund(r.Context(), id, req.ProcessorResponse)
	if err != nil {
		writeError(w, "payment", err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}
