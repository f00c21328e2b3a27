package progress

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPatch  = errors.New("invalid stats patch")
	ErrInvalidResult = errors.New("invalid exam result")
)

// UserStats are the lifetime counters. The JSON names are the stored format.
type UserStats struct {
	TotalCorrect   int `json:"totalCorrect"`
	CurrentStreak  int `json:"currentStreak"`
	BestScore      int `json:"bestScore"`
	TotalQuestions int `json:"totalQuestions"`
}

// Accuracy is TotalCorrect/TotalQuestions as a rounded percentage, 0 when
// nothing has been answered.
func (s UserStats) Accuracy() int {
	return percent(s.TotalCorrect, s.TotalQuestions)
}

// StatsPatch names the fields to overwrite. Nil fields keep their value.
type StatsPatch struct {
	TotalCorrect   *int
	CurrentStreak  *int
	BestScore      *int
	TotalQuestions *int
}

func (p StatsPatch) Validate() error {
	fields := []struct {
		name string
		v    *int
	}{
		{"totalCorrect", p.TotalCorrect},
		{"currentStreak", p.CurrentStreak},
		{"bestScore", p.BestScore},
		{"totalQuestions", p.TotalQuestions},
	}
	for _, f := range fields {
		if f.v != nil && *f.v < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidPatch, f.name)
		}
	}
	if p.BestScore != nil && *p.BestScore > 100 {
		return fmt.Errorf("%w: bestScore %d above 100", ErrInvalidPatch, *p.BestScore)
	}
	return nil
}

// Apply returns s with the patched fields replaced.
func (p StatsPatch) Apply(s UserStats) UserStats {
	if p.TotalCorrect != nil {
		s.TotalCorrect = *p.TotalCorrect
	}
	if p.CurrentStreak != nil {
		s.CurrentStreak = *p.CurrentStreak
	}
	if p.BestScore != nil {
		s.BestScore = *p.BestScore
	}
	if p.TotalQuestions != nil {
		s.TotalQuestions = *p.TotalQuestions
	}
	return s
}

// SessionDelta is what one completed session adds to the counters.
type SessionDelta struct {
	Correct   int
	Questions int
	Score     int
}

func (d SessionDelta) Validate() error {
	switch {
	case d.Correct < 0 || d.Questions < 0:
		return fmt.Errorf("%w: negative session delta", ErrInvalidPatch)
	case d.Correct > d.Questions:
		return fmt.Errorf("%w: %d correct out of %d questions", ErrInvalidPatch, d.Correct, d.Questions)
	case d.Score < 0 || d.Score > 100:
		return fmt.Errorf("%w: score %d out of range", ErrInvalidPatch, d.Score)
	}
	return nil
}

// Add folds a session into s. BestScore only ever rises.
func (d SessionDelta) Add(s UserStats) UserStats {
	s.TotalCorrect += d.Correct
	s.TotalQuestions += d.Questions
	s.BestScore = max(s.BestScore, d.Score)
	return s
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}
