package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/roadready/backend/internal/api"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/infrastructure/config"
	"github.com/roadready/backend/internal/metrics"
	"github.com/roadready/backend/internal/service"
	"github.com/roadready/backend/internal/store"

	_ "github.com/roadready/backend/docs" // generated swagger docs
)

// @title           RoadReady API
// @version         1.0
// @description     Driving-test practice: randomized quizzes, full practice exams, and progress tracking with streaks.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Dependencies ────────────────────────────────────────────────
	kv, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	m := metrics.New()
	bank := questionbank.Default()

	tracker := service.NewTracker(
		store.WithPrefix(kv, cfg.KeyPrefix()),
		logger,
		m,
		service.WithLocation(cfg.Location),
	)
	sessions := service.NewSessionManager(
		questionbank.NewSelector(bank, nil),
		tracker,
		service.SessionDefaults{
			PracticeQuestions: cfg.PracticeQuestions,
			ExamQuestions:     cfg.ExamQuestions,
			ExamTimeLimit:     cfg.ExamTimeLimit,
		},
		logger,
		m,
	)
	go sessions.RunSweeper(ctx, cfg.SessionSweepInterval, cfg.SessionIdleTimeout)

	handler := api.NewHandler(bank, sessions, tracker, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	// memory has nothing to ping
	checker, _ := kv.(store.HealthChecker)
	mux.Handle("GET /health", api.Health(checker))

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", m.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → Instrument → CORS → mux ─────────
	chain := api.Logging(logger)(api.Instrument(m)(api.CORS(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"store", cfg.StoreDriver,
		"questions", bank.Len(),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
