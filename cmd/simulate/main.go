// Command simulate plays batches of quiz sessions against the configured
// store, for seeding demo data and exercising concurrent completions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/roadready/backend/internal/domain/category"
	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/infrastructure/config"
	"github.com/roadready/backend/internal/service"
	"github.com/roadready/backend/internal/simulation"
	"github.com/roadready/backend/internal/store"
)

func main() {
	p := config.LoadProgress()

	var (
		sessions = flag.Int("sessions", 10, "number of sessions to play")
		workers  = flag.Int("workers", 4, "sessions played concurrently")
		accuracy = flag.Float64("accuracy", 0.75, "chance each answer is correct")
		cat      = flag.String("category", "all", "question category, practice mode only")
		mode     = flag.String("mode", "practice", "practice or exam")
		count    = flag.Int("questions", 0, "questions per session, 0 for the default")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Func("store", "sqlite, redis or memory (default $STORE_DRIVER)", func(v string) error {
		p.StoreDriver = config.StoreDriver(v)
		return nil
	})
	flag.StringVar(&p.SQLitePath, "sqlite", p.SQLitePath, "sqlite database file")
	flag.StringVar(&p.RedisAddr, "redis", p.RedisAddr, "redis address")
	flag.IntVar(&p.RedisDB, "redis-db", p.RedisDB, "redis database number")
	flag.StringVar(&p.UserID, "user", p.UserID, "namespace progress under this user id")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	kv, err := store.Open(ctx, p.StoreOptions())
	if err != nil {
		logger.Error("failed to open store", "driver", p.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	bank := questionbank.Default()
	tracker := service.NewTracker(
		store.WithPrefix(kv, p.KeyPrefix()),
		logger,
		nil,
		service.WithLocation(p.Location),
	)
	sm := service.NewSessionManager(
		questionbank.NewSelector(bank, nil),
		tracker,
		service.SessionDefaults{},
		logger,
		nil,
	)

	report := simulation.Run(ctx, sm, bank, simulation.Plan{
		Sessions: *sessions,
		Workers:  *workers,
		Accuracy: *accuracy,
		Seed:     *seed,
		Request: service.StartRequest{
			Category:      category.Parse(*cat),
			QuestionCount: *count,
			Mode:          practicesession.Mode(*mode),
		},
	})

	stats := tracker.Stats.Read(ctx)
	logger.Info("simulation finished",
		"completed", report.Completed,
		"passed", report.Passed,
		"empty", report.Empty,
		"failed", report.Failed,
		"average_score", report.AverageScore,
		"total_questions", stats.TotalQuestions,
		"best_score", stats.BestScore,
		"streak", stats.CurrentStreak,
	)
}
