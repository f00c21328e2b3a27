package service

import (
	"context"
	"log/slog"
	"time"

	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/domain/progress"
	"github.com/roadready/backend/internal/id"
	"github.com/roadready/backend/internal/metrics"
	"github.com/roadready/backend/internal/store"
)

type calendar struct {
	now func() time.Time
	loc *time.Location
}

func (c *calendar) today() progress.Date {
	return progress.DateOf(c.now(), c.loc)
}

type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.calendar.now = now }
}

// WithLocation sets the zone calendar days are counted in. Defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.calendar.loc = loc
		}
	}
}

// Tracker owns one user's durable progress: stats, history and streak. It
// records completed sessions and serves the derived progress views.
type Tracker struct {
	Stats   *StatsStore
	History *HistoryLog
	Streak  *StreakTracker

	rec      *records
	calendar *calendar
}

// NewTracker builds the progress components over kv. Use one Tracker per
// store namespace so that writes to a key are serialized.
func NewTracker(kv store.Store, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Tracker {
	rec := newRecords(kv, logger, m)
	t := &Tracker{
		rec:      rec,
		calendar: &calendar{now: time.Now, loc: time.Local},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.Stats = &StatsStore{rec: rec}
	t.History = &HistoryLog{rec: rec}
	t.Streak = &StreakTracker{rec: rec, stats: t.Stats, calendar: t.calendar}
	return t
}

// RecordCompletion applies the three completion effects in order: stats,
// history, streak. Each one handles its own failure so a fault in one
// never skips the others.
func (t *Tracker) RecordCompletion(ctx context.Context, result practicesession.Result) {
	// the session is already completed; finish the writes even if the
	// request that triggered them goes away
	ctx = context.WithoutCancel(ctx)
	logger := t.rec.logger.With("session_id", result.SessionID)

	if _, err := t.Stats.RecordSession(ctx, progress.SessionDelta{
		Correct:   result.CorrectCount,
		Questions: result.TotalQuestions,
		Score:     result.Score,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to update stats", "error", err)
	}

	completedAt := result.CompletedAt
	if completedAt.IsZero() {
		completedAt = t.calendar.now()
	}
	if err := t.History.Append(ctx, progress.ExamResult{
		ID:                id.NewTimeOrdered(),
		Score:             result.Score,
		Date:              completedAt,
		Category:          result.Category,
		QuestionsAnswered: result.TotalQuestions,
		TimeSpent:         0,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to append exam result", "error", err)
	}

	streak := t.Streak.Touch(ctx)

	t.rec.metrics.SessionCompleted(string(result.Mode), string(result.Category), result.Score)
	logger.InfoContext(ctx, "session recorded",
		"mode", result.Mode,
		"category", result.Category,
		"score", result.Score,
		"streak", streak,
	)
}

// ResetAll clears every progress key with a single bulk removal.
func (t *Tracker) ResetAll(ctx context.Context) {
	for _, key := range lockOrder {
		unlock := t.rec.locks.lock(key)
		defer unlock()
	}

	if err := t.rec.kv.RemoveMany(ctx, AllKeys...); err != nil {
		t.rec.fault(ctx, "remove", "all", err)
		return
	}
	t.rec.logger.InfoContext(ctx, "progress reset")
}

// Summary computes the progress views from the current stats and history.
func (t *Tracker) Summary(ctx context.Context) progress.Summary {
	return progress.Summarize(
		t.Stats.Read(ctx),
		t.History.ReadAll(ctx),
		t.calendar.now(),
		t.calendar.loc,
	)
}
