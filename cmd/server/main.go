package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/studyquest/backend/internal/api"
	"github.com/studyquest/backend/internal/domain/bossbattle"
	"github.com/studyquest/backend/internal/infrastructure/config"
	"github.com/studyquest/backend/internal/infrastructure/logging"
	"github.com/studyquest/backend/internal/infrastructure/metrics"
	"github.com/studyquest/backend/internal/leaderboard"
	"github.com/studyquest/backend/internal/llm"
	"github.com/studyquest/backend/internal/mentor"
	"github.com/studyquest/backend/internal/quizgen"
	"github.com/studyquest/backend/internal/service"
	"github.com/studyquest/backend/internal/store"

	_ "github.com/studyquest/backend/docs" // generated swagger docs
)

// @title           StudyQuest API
// @version         1.0
// @description     Gamified study tracker: log sessions, complete quests, fight quiz boss battles and get mentor feedback on reflections.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.MustLoad()
	logger, syncLogs := logging.New(cfg.IsProduction())
	defer syncLogs()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.Open(store.Options{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	var completer llm.JSONCompleter
	if cfg.LLM.Enabled() {
		completer = llm.NewClient(cfg.LLM.URL, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.Timeout)
		logger.Info("language model enabled", "url", cfg.LLM.URL, "model", cfg.LLM.Model)
	}

	ranker, closeRanker := newRanker(cfg.Redis, db, logger)
	defer closeRanker()

	progression := service.NewProgression(db, ranker, logger, m)
	battles := service.NewBattles(
		bossbattle.NewManager(
			bossbattle.WithLives(cfg.Boss.MaxLives),
			bossbattle.WithDefaultTimeLimit(cfg.Boss.DefaultTimeLimit),
		),
		quizgen.New(completer, logger, m),
		db, progression, logger, m,
	)

	handler := api.NewHandler(api.Deps{
		Store:       db,
		Mentor:      mentor.New(completer, logger, m),
		Battles:     battles,
		Progression: progression,
		Ranker:      ranker,
		Logger:      logger,
	})

	router := api.NewRouter(handler, api.RouterOptions{
		Logger:         logger,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// LLM calls run inside the request
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// newRanker returns a Redis-backed ranker seeded from the database when
// Redis is configured and reachable, and the table-backed one otherwise.
func newRanker(cfg config.RedisConfig, db *store.GormStore, logger *slog.Logger) (leaderboard.Ranker, func()) {
	fallback := leaderboard.NewStoreRanker(db)
	if cfg.Addr == "" {
		return fallback, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, ranking from the database", "addr", cfg.Addr, "error", err)
		client.Close()
		return fallback, func() {}
	}

	rows, err := db.TopLeaderboard(ctx, 0)
	if err != nil {
		logger.Warn("failed to read leaderboard, ranking from the database", "error", err)
		client.Close()
		return fallback, func() {}
	}

	ranker := leaderboard.NewRedisRanker(client)
	if err := ranker.Warm(ctx, leaderboard.Entries(rows)); err != nil {
		logger.Warn("failed to warm redis leaderboard, ranking from the database", "error", err)
		client.Close()
		return fallback, func() {}
	}

	logger.Info("leaderboard served from redis", "addr", cfg.Addr, "users", len(rows))
	return ranker, func() { client.Close() }
}
