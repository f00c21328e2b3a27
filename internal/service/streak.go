package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roadready/backend/internal/domain/progress"
)

// StreakTracker counts consecutive calendar days with a completed session.
type StreakTracker struct {
	rec      *records
	stats    *StatsStore
	calendar *calendar
}

// Touch counts today as a study day and returns the resulting streak. A
// second call on the same calendar day changes nothing, and neither does a
// call made while the stored streak cannot be read.
//
// The streak is mirrored into user_stats while daily_streak is still held,
// so a concurrent ResetAll never sees one without the other. Lock order is
// daily_streak before user_stats everywhere.
func (t *StreakTracker) Touch(ctx context.Context) int {
	unlock := t.rec.locks.lock(KeyDailyStreak)
	defer unlock()

	today := t.calendar.today()
	last, err := t.lastStudyDate(ctx)
	if !overwritable(err) {
		return 0
	}
	current, err := t.current(ctx)
	if !overwritable(err) {
		return 0
	}

	streak, changed := progress.NextStreak(last, current, today)
	if !changed {
		return current
	}

	t.rec.setRaw(ctx, KeyLastStudyDate, []byte(today.String()))
	t.rec.setRaw(ctx, KeyDailyStreak, []byte(strconv.Itoa(streak)))

	if _, err := t.stats.Write(ctx, progress.StatsPatch{CurrentStreak: &streak}); err != nil {
		t.rec.logger.ErrorContext(ctx, "failed to mirror streak", "streak", streak, "error", err)
	}
	return streak
}

// Current returns the stored streak, 0 when none is stored.
func (t *StreakTracker) Current(ctx context.Context) int {
	n, _ := t.current(ctx)
	return n
}

func (t *StreakTracker) current(ctx context.Context) (int, error) {
	data, err := t.rec.fetch(ctx, KeyDailyStreak)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(string(data))
	if err == nil && n < 0 {
		err = fmt.Errorf("negative streak %d", n)
	}
	if err != nil {
		t.rec.fault(ctx, "decode", KeyDailyStreak, err)
		return 0, fmt.Errorf("%w: %s: %v", errCorrupt, KeyDailyStreak, err)
	}
	return n, nil
}

// LastStudyDate returns the last counted day, zero when never studied.
func (t *StreakTracker) LastStudyDate(ctx context.Context) progress.Date {
	d, _ := t.lastStudyDate(ctx)
	return d
}

func (t *StreakTracker) lastStudyDate(ctx context.Context) (progress.Date, error) {
	data, err := t.rec.fetch(ctx, KeyLastStudyDate)
	if err != nil {
		return progress.Date{}, err
	}
	d, err := progress.ParseDate(string(data))
	if err != nil {
		t.rec.fault(ctx, "decode", KeyLastStudyDate, err)
		return progress.Date{}, fmt.Errorf("%w: %s: %v", errCorrupt, KeyLastStudyDate, err)
	}
	return d, nil
}
