package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studyquest/backend/internal/service"
	"github.com/studyquest/backend/internal/store"
)

const (
	msgQuestNotFound  = "Quest not found."
	msgQuestCompleted = "Quest already completed."
	msgLevelNotFound  = "Level not found."
)

type CreateQuestRequest struct {
	Name        string     `json:"name" validate:"required,max=128"`
	Description string     `json:"description" validate:"required"`
	Difficulty  string     `json:"difficulty" validate:"required,oneof=easy medium hard"`
	XPReward    int        `json:"xp_reward" validate:"gte=0"`
	AssignedTo  *string    `json:"assigned_to" validate:"omitempty,max=64"`
	IsDaily     bool       `json:"is_daily"`
	Deadline    *time.Time `json:"deadline"`
}

type CompleteQuestResponse struct {
	Quest store.Quest  `json:"quest"`
	Level *store.Level `json:"level"`
}

// listQuests godoc
// @Summary      List quests
// @Tags         quests
// @Produce      json
// @Param        user   query     string  false  "Only quests assigned to this user"
// @Param        daily  query     bool    false  "Only daily quests"
// @Success      200    {array}   store.Quest
// @Router       /quests/ [get]
func (h *Handler) listQuests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	daily, _ := strconv.ParseBool(q.Get("daily"))

	quests, err := h.store.ListQuests(r.Context(), store.QuestFilter{
		AssignedTo: q.Get("user"),
		DailyOnly:  daily,
	})
	if h.handleStoreError(w, err, msgQuestNotFound) {
		return
	}
	if quests == nil {
		quests = []store.Quest{}
	}
	respondJSON(w, http.StatusOK, quests)
}

// createQuest godoc
// @Summary      Create a quest
// @Tags         quests
// @Accept       json
// @Produce      json
// @Param        body  body      CreateQuestRequest  true  "Quest"
// @Success      201   {object}  store.Quest
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /quests/ [post]
func (h *Handler) createQuest(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestRequest
	if !decodeJSON(w, r, &req) || !h.validateRequest(w, req) {
		return
	}

	if req.AssignedTo != nil {
		if _, ok := h.requireUser(w, r, *req.AssignedTo); !ok {
			return
		}
	}

	quest := &store.Quest{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		XPReward:    req.XPReward,
		AssignedTo:  req.AssignedTo,
		IsDaily:     req.IsDaily,
		Deadline:    req.Deadline,
	}
	if err := h.store.CreateQuest(r.Context(), quest); err != nil {
		h.handleStoreError(w, err, msgQuestNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, quest)
}

// getQuest godoc
// @Summary      Get a quest
// @Tags         quests
// @Produce      json
// @Param        questID  path      int  true  "Quest ID"
// @Success      200      {object}  store.Quest
// @Failure      404      {object}  ErrorResponse
// @Router       /quests/{questID} [get]
func (h *Handler) getQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "questID")
	if !ok {
		return
	}

	quest, err := h.store.GetQuest(r.Context(), id)
	if h.handleStoreError(w, err, msgQuestNotFound) {
		return
	}
	respondJSON(w, http.StatusOK, quest)
}

// completeQuest godoc
// @Summary      Complete a quest and collect its XP
// @Tags         quests
// @Produce      json
// @Param        questID  path      int     true  "Quest ID"
// @Param        user     query     string  true  "Username credited with the XP"
// @Success      200      {object}  CompleteQuestResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /quests/{questID}/complete [post]
func (h *Handler) completeQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "questID")
	if !ok {
		return
	}
	username := readFields(w, r).String("user", "username")
	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	quest, level, err := h.store.CompleteQuest(r.Context(), id, username, h.progression.Now())
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, msgQuestCompleted)
			return
		}
		h.handleStoreError(w, err, msgQuestNotFound)
		return
	}
	h.progression.Credited(r.Context(), username, quest.XPReward, service.SourceQuest, level)

	respondJSON(w, http.StatusOK, CompleteQuestResponse{Quest: *quest, Level: level})
}

// getLevel godoc
// @Summary      A user's level
// @Tags         quests
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  store.Level
// @Failure      404       {object}  ErrorResponse
// @Router       /quests/levels/{username} [get]
func (h *Handler) getLevel(w http.ResponseWriter, r *http.Request) {
	level, err := h.store.GetLevel(r.Context(), chi.URLParam(r, "username"))
	if h.handleStoreError(w, err, msgLevelNotFound) {
		return
	}
	respondJSON(w, http.StatusOK, level)
}
