package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gmfernandes/leadflow/internal/usecase"
)

type UserHandler struct {
	RegisterUC *usecase.RegisterUserUseCase
	UpdateUC   *usecase.UpdateUserUseCase
	Users      usecase.UserRepository
}

func NewUserHandler(register *usecase.RegisterUserUseCase, update *usecase.UpdateUserUseCase, users usecase.UserRepository) *UserHandler {
	return &UserHandler{RegisterUC: register, UpdateUC: update, Users: users}
}

func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	user, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, "user", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.Users.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, "user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	var input usecase.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadJSON(w, err)
		return
	}

	user, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, "user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
