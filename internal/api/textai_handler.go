package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studyquest/backend/internal/store"
)

const (
	msgReflectionNotFound = "Reflection not found."
	msgNoReflections      = "No reflections found for this user."
)

// createReflection godoc
// @Summary      Submit a reflection and receive mentor feedback
// @Description  Accepts JSON, form or query parameters. Aliases: user|username, reflection_text|reflectionText|text|reflection.
// @Tags         text-ai
// @Accept       json
// @Produce      json
// @Success      201  {object}  store.TextAIReflection
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /text-ai/ [post]
func (h *Handler) createReflection(w http.ResponseWriter, r *http.Request) {
	f := readFields(w, r)

	username := f.String("user", "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}
	text := f.String("reflection_text", "reflectionText", "text", "reflection")
	if text == "" {
		respondError(w, http.StatusBadRequest, "reflection_text is required.")
		return
	}
	date, err := f.Time("date")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}

	fb := h.mentor.Review(r.Context(), text)
	reflection := &store.TextAIReflection{
		User:           username,
		Date:           date,
		ReflectionText: text,
		AIFeedback:     fb.Feedback,
		Summary:        fb.Summary,
		XPReward:       fb.XPReward,
	}
	if err := h.store.CreateReflection(r.Context(), reflection); err != nil {
		h.handleStoreError(w, err, msgUserNotFound)
		return
	}

	respondJSON(w, http.StatusCreated, reflection)
}

// listReflections godoc
// @Summary      List a user's reflections
// @Tags         text-ai
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {array}   store.TextAIReflection
// @Failure      404   {object}  ErrorResponse
// @Router       /text-ai/ [get]
func (h *Handler) listReflections(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	reflections, err := h.store.ListReflections(r.Context(), username)
	if h.handleStoreError(w, err, msgNoReflections) {
		return
	}
	if len(reflections) == 0 {
		respondError(w, http.StatusNotFound, msgNoReflections)
		return
	}

	respondJSON(w, http.StatusOK, reflections)
}

// getReflection godoc
// @Summary      Get one reflection
// @Tags         text-ai
// @Produce      json
// @Param        reflectionID  path      int  true  "Reflection ID"
// @Success      200           {object}  store.TextAIReflection
// @Failure      404           {object}  ErrorResponse
// @Router       /text-ai/{reflectionID} [get]
func (h *Handler) getReflection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "reflectionID")
	if !ok {
		return
	}

	reflection, err := h.store.GetReflection(r.Context(), id)
	if h.handleStoreError(w, err, msgReflectionNotFound) {
		return
	}

	respondJSON(w, http.StatusOK, reflection)
}

// deleteReflection godoc
// @Summary      Delete one reflection
// @Tags         text-ai
// @Produce      json
// @Param        reflectionID  path      int  true  "Reflection ID"
// @Success      200           {object}  MessageResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /text-ai/{reflectionID} [delete]
func (h *Handler) deleteReflection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "reflectionID")
	if !ok {
		return
	}

	if h.handleStoreError(w, h.store.DeleteReflection(r.Context(), id), msgReflectionNotFound) {
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Reflection %d deleted successfully.", id),
	})
}

// pathID parses a numeric path parameter, writing a 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
