package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/studyquest/backend/internal/domain/progression"
)

const recentSessionCount = 3

// ── Request / Response types ────────────────────────────────────────────────

type FeatureButton struct {
	Label       string `json:"label" example:"Daily Boss Battle"`
	Endpoint    string `json:"endpoint" example:"/boss"`
	Description string `json:"description"`
	CTA         string `json:"cta" example:"Start battle"`
}

type Hero struct {
	Headline string `json:"headline"`
	Subtext  string `json:"subtext"`
}

type HomeResponse struct {
	Message           string            `json:"message"`
	Status            string            `json:"status" example:"running"`
	Hero              Hero              `json:"hero"`
	FeatureButtons    []FeatureButton   `json:"feature_buttons"`
	AvailableSections map[string]string `json:"available_sections"`
	Docs              string            `json:"docs" example:"/swagger/"`
}

type DashboardSummary struct {
	TotalXP           int    `json:"total_xp" example:"340"`
	TotalSessions     int    `json:"total_sessions" example:"12"`
	CurrentStreakDays int    `json:"current_streak_days" example:"4"`
	Motivation        string `json:"motivation"`
}

type RecentSession struct {
	Date       string  `json:"date" example:"2024-03-02"`
	Duration   int     `json:"duration" example:"45"`
	XP         int     `json:"xp" example:"45"`
	Reflection *string `json:"reflection"`
}

type DashboardResponse struct {
	User           string            `json:"user"`
	Summary        DashboardSummary  `json:"summary"`
	RecentSessions []RecentSession   `json:"recent_sessions"`
	Navigation     map[string]string `json:"navigation"`
	FeatureButtons []FeatureButton   `json:"feature_buttons"`
}

var featureButtons = []FeatureButton{
	{
		Label:       "Progress Tracking",
		Endpoint:    "/progress",
		Description: "Log a study session, earn XP, and see your streak.",
		CTA:         "Log progress",
	},
	{
		Label:       "Quests & Levels",
		Endpoint:    "/quests",
		Description: "Pick a quest and level up as you complete tasks.",
		CTA:         "View quests",
	},
	{
		Label:       "Cosmetics & Rewards",
		Endpoint:    "/cosmetics",
		Description: "Customize your avatar and browse unlockable badges.",
		CTA:         "Open cosmetics",
	},
	{
		Label:       "AI Text Mentor",
		Endpoint:    "/text-ai",
		Description: "Reflect on your study session and get AI feedback.",
		CTA:         "Ask the mentor",
	},
	{
		Label:       "Daily Boss Battle",
		Endpoint:    "/boss",
		Description: "Face the daily quiz to earn bonus XP.",
		CTA:         "Start battle",
	},
	{
		Label:       "Social Features",
		Endpoint:    "/social",
		Description: "Add friends and climb the leaderboard together.",
		CTA:         "Go social",
	},
}

// navigationLinks maps each feature label to its route prefix.
func navigationLinks() map[string]string {
	links := make(map[string]string, len(featureButtons))
	for _, b := range featureButtons {
		links[b.Label] = b.Endpoint
	}
	return links
}

// ── Handlers ────────────────────────────────────────────────────────────────

// home godoc
// @Summary      Landing payload
// @Tags         home
// @Produce      json
// @Success      200  {object}  HomeResponse
// @Router       /home/ [get]
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HomeResponse{
		Message: "Welcome to the StudyQuest Backend API 🎯",
		Status:  "running",
		Hero: Hero{
			Headline: "Pick a feature to explore",
			Subtext:  "Home stays light — tap a button to dive deeper.",
		},
		FeatureButtons:    featureButtons,
		AvailableSections: navigationLinks(),
		Docs:              "/swagger/",
	})
}

// dashboard godoc
// @Summary      User dashboard: XP, streak and recent sessions
// @Tags         home
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {object}  DashboardResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /home/dashboard [get]
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	user, ok := h.requireUser(w, r, username)
	if !ok {
		return
	}

	sessions, err := h.store.ListProgress(r.Context(), username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}

	resp := DashboardResponse{
		User:           username,
		RecentSessions: []RecentSession{},
		Navigation:     navigationLinks(),
		FeatureButtons: featureButtons,
	}

	if len(sessions) == 0 {
		resp.Summary = DashboardSummary{
			TotalXP:    user.TotalXP,
			Motivation: progression.FirstQuestMotivation,
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})

	totalXP := user.TotalXP
	dates := make([]time.Time, len(sessions))
	sessionXP := 0
	for i, s := range sessions {
		dates[i] = s.Date
		sessionXP += s.XPGained
	}
	if totalXP == 0 {
		totalXP = sessionXP
	}

	streak := progression.Streak(dates)
	resp.Summary = DashboardSummary{
		TotalXP:           totalXP,
		TotalSessions:     len(sessions),
		CurrentStreakDays: streak,
		Motivation:        progression.Motivation(streak),
	}

	for _, s := range sessions[:min(recentSessionCount, len(sessions))] {
		resp.RecentSessions = append(resp.RecentSessions, RecentSession{
			Date:       s.Date.Format(time.DateOnly),
			Duration:   s.DurationMinutes,
			XP:         s.XPGained,
			Reflection: s.Reflection,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
