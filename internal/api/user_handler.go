package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studyquest/backend/internal/store"
)

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=32,username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type UserResponse struct {
	store.User
	Level *store.Level `json:"level,omitempty"`
}

// createUser godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "New user"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /users/ [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeJSON(w, r, &req) || !h.validateRequest(w, req) {
		return
	}

	user := &store.User{
		Username: req.Username,
		Email:    req.Email,
		JoinDate: time.Now().UTC(),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		h.handleStoreError(w, err, msgUserNotFound)
		return
	}

	h.logger.Info("user registered", "user", user.Username)
	if err := h.ranker.Record(r.Context(), user.Username, user.TotalXP); err != nil {
		h.logger.Error("failed to update ranking", "user", user.Username, "error", err)
	}

	level, err := h.store.GetLevel(r.Context(), user.Username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	respondJSON(w, http.StatusCreated, UserResponse{User: *user, Level: level})
}

// getUser godoc
// @Summary      Get a user with their level
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  UserResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{username} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r, chi.URLParam(r, "username"))
	if !ok {
		return
	}

	level, err := h.store.GetLevel(r.Context(), user.Username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	respondJSON(w, http.StatusOK, UserResponse{User: *user, Level: level})
}
