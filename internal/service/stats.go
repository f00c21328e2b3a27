package service

import (
	"context"

	"github.com/roadready/backend/internal/domain/progress"
)

// StatsStore holds the single UserStats record.
type StatsStore struct {
	rec *records
}

// Read returns the stored stats, or zero stats when nothing usable is stored.
func (s *StatsStore) Read(ctx context.Context) progress.UserStats {
	var stats progress.UserStats
	if !s.rec.load(ctx, KeyUserStats, &stats) {
		return progress.UserStats{}
	}
	return stats
}

// Write merges patch over the stored stats and persists the result. Only an
// invalid patch is reported. A failed write is logged and the merged value
// is still returned; when the stored stats cannot be read the write is
// dropped so the counters on disk are never replaced by a guess.
func (s *StatsStore) Write(ctx context.Context, patch progress.StatsPatch) (progress.UserStats, error) {
	if err := patch.Validate(); err != nil {
		return progress.UserStats{}, err
	}
	return s.update(ctx, patch.Apply), nil
}

// RecordSession adds one completed session to the counters.
func (s *StatsStore) RecordSession(ctx context.Context, delta progress.SessionDelta) (progress.UserStats, error) {
	if err := delta.Validate(); err != nil {
		return progress.UserStats{}, err
	}
	return s.update(ctx, delta.Add), nil
}

func (s *StatsStore) update(ctx context.Context, fn func(progress.UserStats) progress.UserStats) progress.UserStats {
	unlock := s.rec.locks.lock(KeyUserStats)
	defer unlock()

	var current progress.UserStats
	err := s.rec.decode(ctx, KeyUserStats, &current)
	if err != nil {
		current = progress.UserStats{}
	}
	stats := fn(current)
	if !overwritable(err) {
		return stats
	}
	s.rec.save(ctx, KeyUserStats, stats)
	return stats
}
