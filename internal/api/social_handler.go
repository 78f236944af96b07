package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studyquest/backend/internal/leaderboard"
	"github.com/studyquest/backend/internal/store"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type AddFriendRequest struct {
	User           string `json:"user" validate:"required"`
	FriendUsername string `json:"friend_username" validate:"required,nefield=User"`
}

type LeaderboardResponse struct {
	Entries []leaderboard.Entry `json:"entries"`
}

// addFriend godoc
// @Summary      Add a friend
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        body  body      AddFriendRequest  true  "Friendship"
// @Success      201   {object}  store.Friend
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /social/friends [post]
func (h *Handler) addFriend(w http.ResponseWriter, r *http.Request) {
	var req AddFriendRequest
	if !decodeJSON(w, r, &req) || !h.validateRequest(w, req) {
		return
	}
	if _, ok := h.requireUser(w, r, req.User); !ok {
		return
	}
	if _, ok := h.requireUser(w, r, req.FriendUsername); !ok {
		return
	}

	friend := &store.Friend{
		User:           req.User,
		FriendUsername: req.FriendUsername,
		Since:          time.Now().UTC(),
		Status:         "accepted",
	}
	if err := h.store.CreateFriend(r.Context(), friend); err != nil {
		h.handleStoreError(w, err, msgUserNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, friend)
}

// listFriends godoc
// @Summary      A user's friends
// @Tags         social
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {array}   store.Friend
// @Failure      404   {object}  ErrorResponse
// @Router       /social/friends [get]
func (h *Handler) listFriends(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	friends, err := h.store.ListFriends(r.Context(), username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	if friends == nil {
		friends = []store.Friend{}
	}
	respondJSON(w, http.StatusOK, friends)
}

// leaderboard godoc
// @Summary      Global XP ranking
// @Tags         social
// @Produce      json
// @Param        limit  query     int  false  "Entries to return (1-100)"  default(10)
// @Success      200    {object}  LeaderboardResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /social/leaderboard [get]
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}

	entries, err := h.ranker.Top(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to read leaderboard", "error", err)
		respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
}

// leaderboardRank godoc
// @Summary      A user's position on the leaderboard
// @Tags         social
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  leaderboard.Entry
// @Failure      404       {object}  ErrorResponse
// @Router       /social/leaderboard/{username} [get]
func (h *Handler) leaderboardRank(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r, chi.URLParam(r, "username"))
	if !ok {
		return
	}

	entry, err := h.ranker.Rank(r.Context(), user.Username)
	if err != nil {
		h.logger.Error("failed to read rank", "user", user.Username, "error", err)
		respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}
