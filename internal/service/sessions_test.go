package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/roadready/backend/internal/domain/category"
	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/service"
	"github.com/roadready/backend/internal/store"
)

func newManager(t *testing.T) (*service.SessionManager, *service.Tracker) {
	t.Helper()
	tr, _ := newTracker(t, store.NewMemory())
	sel := questionbank.NewSelector(questionbank.Default(), rand.NewSource(1))
	sm := service.NewSessionManager(sel, tr, service.SessionDefaults{
		PracticeQuestions: 5,
		ExamQuestions:     12,
		ExamTimeLimit:     30 * time.Minute,
	}, nil, nil)
	return sm, tr
}

func TestSessionManager_StartRegisters(t *testing.T) {
	sm, _ := newManager(t)

	s, err := sm.Start(context.Background(), service.StartRequest{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != practicesession.StateInProgress {
		t.Errorf("expected %s, got %s", practicesession.StateInProgress, s.State())
	}
	if got := s.View().Total; got != 5 {
		t.Errorf("expected 5 questions, got %d", got)
	}
	if _, ok := sm.Get(s.ID); !ok {
		t.Error("expected session to be registered")
	}
}

func TestSessionManager_EmptyPoolNotRegistered(t *testing.T) {
	sm, _ := newManager(t)

	s, err := sm.Start(context.Background(), service.StartRequest{Category: category.Category("parking")})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.Empty() {
		t.Error("expected empty session")
	}
	if sm.Len() != 0 {
		t.Errorf("expected no registered sessions, got %d", sm.Len())
	}
}

func TestSessionManager_ExamDefaults(t *testing.T) {
	sm, _ := newManager(t)

	cfg, err := sm.Config(service.StartRequest{Mode: practicesession.ModeExam})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.QuestionCount != 12 {
		t.Errorf("expected 12, got %d", cfg.QuestionCount)
	}
	if cfg.Category != category.All {
		t.Errorf("expected exam across all categories, got %s", cfg.Category)
	}
	if cfg.TimeLimit == nil || *cfg.TimeLimit != 30*time.Minute {
		t.Errorf("expected 30m limit, got %v", cfg.TimeLimit)
	}
}

func TestSessionManager_ExamRejectsSingleCategory(t *testing.T) {
	sm, _ := newManager(t)

	_, err := sm.Start(context.Background(), service.StartRequest{Mode: practicesession.ModeExam, Category: category.FirstAid})
	if !errors.Is(err, service.ErrExamCategory) {
		t.Errorf("expected ErrExamCategory, got %v", err)
	}
	if sm.Len() != 0 {
		t.Errorf("expected no registered sessions, got %d", sm.Len())
	}

	if _, err := sm.Config(service.StartRequest{Mode: practicesession.ModeExam, Category: category.All}); err != nil {
		t.Errorf("expected explicit all to be accepted, got %v", err)
	}
}

func TestSessionManager_InvalidMode(t *testing.T) {
	sm, _ := newManager(t)

	_, err := sm.Start(context.Background(), service.StartRequest{Mode: "timed"})
	if !errors.Is(err, service.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestSessionManager_CompletionReachesTracker(t *testing.T) {
	ctx := context.Background()
	sm, tr := newManager(t)

	s, _ := sm.Start(ctx, service.StartRequest{QuestionCount: 2, Category: category.RoadSigns})
	for s.State() != practicesession.StateCompleted {
		if err := s.SelectAnswer(0); err != nil {
			t.Fatalf("select: %v", err)
		}
		if _, err := s.SubmitCurrent(); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.Advance(ctx); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	stats := tr.Stats.Read(ctx)
	if stats.TotalQuestions != 2 {
		t.Errorf("expected 2 questions recorded, got %d", stats.TotalQuestions)
	}
	history := tr.History.ReadAll(ctx)
	if len(history) != 1 || history[0].Category != category.RoadSigns {
		t.Errorf("expected one road-signs result, got %+v", history)
	}
}

func TestSessionManager_RemoveAndSweep(t *testing.T) {
	ctx := context.Background()
	sm, _ := newManager(t)

	a, _ := sm.Start(ctx, service.StartRequest{})
	b, _ := sm.Start(ctx, service.StartRequest{})

	if !sm.Remove(a.ID) {
		t.Error("expected remove to report an existing session")
	}
	if sm.Remove(a.ID) {
		t.Error("expected second remove to report nothing removed")
	}

	if n := sm.Sweep(time.Hour); n != 0 {
		t.Errorf("expected fresh session kept, removed %d", n)
	}
	if n := sm.Sweep(-time.Second); n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}
	if _, ok := sm.Get(b.ID); ok {
		t.Error("expected swept session gone")
	}
}
