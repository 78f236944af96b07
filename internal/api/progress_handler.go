package api

import (
	"net/http"
	"time"

	"github.com/studyquest/backend/internal/domain/progression"
	"github.com/studyquest/backend/internal/service"
	"github.com/studyquest/backend/internal/store"
)

const maxSessionMinutes = 24 * 60

type ProgressResponse struct {
	Progress store.Progress `json:"progress"`
	Level    *store.Level   `json:"level"`
}

// logProgress godoc
// @Summary      Log a study session
// @Description  JSON, form or query. Aliases: user|username, duration_minutes|durationMinutes|duration, reflection|note|text.
// @Tags         progress
// @Accept       json
// @Produce      json
// @Success      201  {object}  ProgressResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /progress/ [post]
func (h *Handler) logProgress(w http.ResponseWriter, r *http.Request) {
	f := readFields(w, r)

	username := f.String("user", "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}
	minutes, present, err := f.Int("duration_minutes", "durationMinutes", "duration")
	if !present || err != nil || minutes < 1 || minutes > maxSessionMinutes {
		respondError(w, http.StatusBadRequest, "duration_minutes must be between 1 and 1440.")
		return
	}
	date, err := f.Time("date")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	session := store.Progress{
		User:            username,
		Date:            date,
		DurationMinutes: minutes,
		XPGained:        progression.StudyXP(minutes),
	}
	if note := f.String("reflection", "note", "text"); note != "" {
		session.Reflection = &note
	}

	level, err := h.store.LogProgress(r.Context(), &session, h.progression.Now())
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	h.progression.Credited(r.Context(), username, session.XPGained, service.SourceProgress, level)

	respondJSON(w, http.StatusCreated, ProgressResponse{Progress: session, Level: level})
}

// listProgress godoc
// @Summary      A user's study sessions, newest first
// @Tags         progress
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {array}   store.Progress
// @Failure      404   {object}  ErrorResponse
// @Router       /progress/ [get]
func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	sessions, err := h.store.ListProgress(r.Context(), username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	if sessions == nil {
		sessions = []store.Progress{}
	}
	respondJSON(w, http.StatusOK, sessions)
}
