package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyquest/backend/internal/store"
)

const msgAvatarNotFound = "Avatar not found."

type AvatarRequest struct {
	AvatarName *string `json:"avatar_name" validate:"omitempty,max=64"`
	Hairstyle  *string `json:"hairstyle" validate:"omitempty,max=64"`
	Outfit     *string `json:"outfit" validate:"omitempty,max=64"`
	Accessory  *string `json:"accessory" validate:"omitempty,max=64"`
	Theme      string  `json:"theme" validate:"omitempty,max=32"`
}

type CreateBadgeRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" validate:"required"`
	XPRequired  int     `json:"xp_required" validate:"gte=0"`
	IconURL     *string `json:"icon_url" validate:"omitempty,url"`
}

type UserBadge struct {
	store.Badge
	Unlocked bool `json:"unlocked"`
}

type UserBadgesResponse struct {
	User    string      `json:"user"`
	TotalXP int         `json:"total_xp"`
	Badges  []UserBadge `json:"badges"`
}

// getAvatar godoc
// @Summary      A user's avatar
// @Tags         cosmetics
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  store.Avatar
// @Failure      404       {object}  ErrorResponse
// @Router       /cosmetics/avatar/{username} [get]
func (h *Handler) getAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := h.store.GetAvatar(r.Context(), chi.URLParam(r, "username"))
	if h.handleStoreError(w, err, msgAvatarNotFound) {
		return
	}
	respondJSON(w, http.StatusOK, avatar)
}

// putAvatar godoc
// @Summary      Create or replace a user's avatar
// @Tags         cosmetics
// @Accept       json
// @Produce      json
// @Param        username  path      string         true  "Username"
// @Param        body      body      AvatarRequest  true  "Avatar"
// @Success      200       {object}  store.Avatar
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /cosmetics/avatar/{username} [put]
func (h *Handler) putAvatar(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req AvatarRequest
	if !decodeJSON(w, r, &req) || !h.validateRequest(w, req) {
		return
	}
	if _, ok := h.requireUser(w, r, username); !ok {
		return
	}

	avatar := &store.Avatar{
		User:       username,
		AvatarName: req.AvatarName,
		Hairstyle:  req.Hairstyle,
		Outfit:     req.Outfit,
		Accessory:  req.Accessory,
		Theme:      req.Theme,
	}
	if err := h.store.UpsertAvatar(r.Context(), avatar); err != nil {
		h.handleStoreError(w, err, msgAvatarNotFound)
		return
	}
	respondJSON(w, http.StatusOK, avatar)
}

// listBadges godoc
// @Summary      Every badge, cheapest first
// @Tags         cosmetics
// @Produce      json
// @Success      200  {array}  store.Badge
// @Router       /cosmetics/badges [get]
func (h *Handler) listBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.store.ListBadges(r.Context())
	if h.handleStoreError(w, err, msgInternal) {
		return
	}
	if badges == nil {
		badges = []store.Badge{}
	}
	respondJSON(w, http.StatusOK, badges)
}

// createBadge godoc
// @Summary      Define a badge
// @Tags         cosmetics
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBadgeRequest  true  "Badge"
// @Success      201   {object}  store.Badge
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /cosmetics/badges [post]
func (h *Handler) createBadge(w http.ResponseWriter, r *http.Request) {
	var req CreateBadgeRequest
	if !decodeJSON(w, r, &req) || !h.validateRequest(w, req) {
		return
	}

	badge := &store.Badge{
		Name:        req.Name,
		Description: req.Description,
		XPRequired:  req.XPRequired,
		IconURL:     req.IconURL,
	}
	if err := h.store.CreateBadge(r.Context(), badge); err != nil {
		h.handleStoreError(w, err, msgInternal)
		return
	}
	respondJSON(w, http.StatusCreated, badge)
}

// userBadges godoc
// @Summary      Badges with the user's unlock state
// @Tags         cosmetics
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  UserBadgesResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /cosmetics/badges/{username} [get]
func (h *Handler) userBadges(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r, chi.URLParam(r, "username"))
	if !ok {
		return
	}

	badges, err := h.store.ListBadges(r.Context())
	if h.handleStoreError(w, err, msgInternal) {
		return
	}

	resp := UserBadgesResponse{
		User:    user.Username,
		TotalXP: user.TotalXP,
		Badges:  make([]UserBadge, len(badges)),
	}
	for i, b := range badges {
		resp.Badges[i] = UserBadge{Badge: b, Unlocked: user.TotalXP >= b.XPRequired}
	}
	respondJSON(w, http.StatusOK, resp)
}
