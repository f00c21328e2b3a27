package service

import (
	"context"

	"github.com/roadready/backend/internal/domain/progress"
)

// HistoryLog is the newest-first list of completed attempts. Entries are
// only ever prepended; the whole log is cleared by Tracker.ResetAll.
type HistoryLog struct {
	rec *records
}

// Append validates r and puts it at the front of the log. When the stored
// log cannot be read the entry is dropped rather than replacing the log.
func (h *HistoryLog) Append(ctx context.Context, r progress.ExamResult) error {
	if err := r.Validate(); err != nil {
		return err
	}

	unlock := h.rec.locks.lock(KeyExamResults)
	defer unlock()

	var results []progress.ExamResult
	err := h.rec.decode(ctx, KeyExamResults, &results)
	if !overwritable(err) {
		return nil
	}
	if err != nil {
		results = nil
	}
	next := make([]progress.ExamResult, 0, len(results)+1)
	next = append(next, r)
	next = append(next, results...)
	h.rec.save(ctx, KeyExamResults, next)
	return nil
}

// ReadAll returns every stored result, newest first. A missing or unreadable
// log is empty.
func (h *HistoryLog) ReadAll(ctx context.Context) []progress.ExamResult {
	var results []progress.ExamResult
	if !h.rec.load(ctx, KeyExamResults, &results) || results == nil {
		return []progress.ExamResult{}
	}
	return results
}

// Recent returns at most n of the newest results. n <= 0 means all.
func (h *HistoryLog) Recent(ctx context.Context, n int) []progress.ExamResult {
	results := h.ReadAll(ctx)
	if n > 0 && n < len(results) {
		results = results[:n]
	}
	return results
}
