// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studyquest/backend/internal/infrastructure/metrics"
)

type RouterOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

// NewRouter wires every route behind the middleware chain:
// RequestID → Recoverer → Logging → Metrics → CORS → routes.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Logging(opts.Logger))
	r.Use(Metrics(opts.Metrics))
	r.Use(CORS())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home/", http.StatusTemporaryRedirect)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}

	// Swagger UI served at /swagger/
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/home", func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/dashboard", h.dashboard)
	})

	r.Route("/text-ai", func(r chi.Router) {
		r.Get("/", h.listReflections)
		r.Post("/", h.createReflection)
		r.Get("/{reflectionID}", h.getReflection)
		r.Delete("/{reflectionID}", h.deleteReflection)
	})

	r.Route("/boss", func(r chi.Router) {
		r.Get("/", h.bossInfo)
		r.Post("/start", h.startBossBattle)
		r.Get("/question", h.currentQuestion)
		r.Post("/answer", h.submitAnswer)
		r.Get("/status", h.battleStatus)
		r.Post("/forfeit", h.forfeitBattle)
		r.Get("/history", h.battleHistory)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/{username}", h.getUser)
	})

	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.listProgress)
		r.Post("/", h.logProgress)
	})

	r.Route("/quests", func(r chi.Router) {
		r.Get("/", h.listQuests)
		r.Post("/", h.createQuest)
		r.Get("/levels/{username}", h.getLevel)
		r.Get("/{questID}", h.getQuest)
		r.Post("/{questID}/complete", h.completeQuest)
	})

	r.Route("/cosmetics", func(r chi.Router) {
		r.Get("/avatar/{username}", h.getAvatar)
		r.Put("/avatar/{username}", h.putAvatar)
		r.Get("/badges", h.listBadges)
		r.Post("/badges", h.createBadge)
		r.Get("/badges/{username}", h.userBadges)
	})

	r.Route("/social", func(r chi.Router) {
		r.Get("/friends", h.listFriends)
		r.Post("/friends", h.addFriend)
		r.Get("/leaderboard", h.leaderboard)
		r.Get("/leaderboard/{username}", h.leaderboardRank)
	})

	return r
}
