package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/roadready/backend/internal/domain/category"
	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/metrics"
)

var (
	ErrInvalidMode  = errors.New("invalid session mode")
	ErrExamCategory = errors.New("exam sessions draw from every category")
)

// SessionDefaults are the lengths used when a start request leaves them out.
type SessionDefaults struct {
	PracticeQuestions int
	ExamQuestions     int
	ExamTimeLimit     time.Duration
}

// StartRequest describes a new session. Zero values pick the defaults.
type StartRequest struct {
	Category      category.Category
	QuestionCount int
	Mode          practicesession.Mode
}

type sessionEntry struct {
	session *practicesession.PracticeSession
	touched time.Time
}

// SessionManager keeps the in-memory sessions a client is driving. Sessions
// are never persisted; only their results reach the Recorder.
type SessionManager struct {
	selector practicesession.Selector
	recorder practicesession.Recorder
	defaults SessionDefaults
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type SessionOption func(*SessionManager)

// WithSessionClock replaces time.Now for session timestamps and idle sweeps.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(sm *SessionManager) { sm.now = now }
}

func NewSessionManager(
	selector practicesession.Selector,
	recorder practicesession.Recorder,
	defaults SessionDefaults,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...SessionOption,
) *SessionManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if defaults.PracticeQuestions <= 0 {
		defaults.PracticeQuestions = practicesession.DefaultPracticeQuestions
	}
	if defaults.ExamQuestions <= 0 {
		defaults.ExamQuestions = practicesession.DefaultExamQuestions
	}
	if defaults.ExamTimeLimit <= 0 {
		defaults.ExamTimeLimit = practicesession.DefaultExamTimeLimit
	}
	sm := &SessionManager{
		selector: selector,
		recorder: recorder,
		defaults: defaults,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Config resolves req against the defaults. An exam always covers the whole
// bank, so an exam request naming a single category is rejected.
func (sm *SessionManager) Config(req StartRequest) (practicesession.SessionConfig, error) {
	switch req.Mode {
	case "", practicesession.ModePractice:
		cfg := practicesession.DefaultConfig()
		cfg.QuestionCount = sm.defaults.PracticeQuestions
		if req.QuestionCount > 0 {
			cfg.QuestionCount = req.QuestionCount
		}
		if req.Category != "" {
			cfg.Category = req.Category
		}
		return cfg, nil
	case practicesession.ModeExam:
		if !req.Category.IsAll() {
			return practicesession.SessionConfig{}, fmt.Errorf("%w: got %q", ErrExamCategory, req.Category)
		}
		n := sm.defaults.ExamQuestions
		if req.QuestionCount > 0 {
			n = req.QuestionCount
		}
		return practicesession.ExamConfig(n, sm.defaults.ExamTimeLimit), nil
	default:
		return practicesession.SessionConfig{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
}

// Start creates and starts a session. A session whose draw is empty is
// returned but not registered; the caller shows a "no questions" state.
func (sm *SessionManager) Start(ctx context.Context, req StartRequest) (*practicesession.PracticeSession, error) {
	cfg, err := sm.Config(req)
	if err != nil {
		return nil, err
	}

	s := practicesession.New(sm.selector, cfg,
		practicesession.WithRecorder(sm.recorder),
		practicesession.WithClock(sm.now),
	)
	if !s.Start() {
		sm.logger.InfoContext(ctx, "empty question pool", "category", cfg.Category)
		return s, nil
	}

	sm.mu.Lock()
	sm.sessions[s.ID] = &sessionEntry{session: s, touched: sm.now()}
	sm.mu.Unlock()

	sm.metrics.SessionStarted(string(cfg.Mode), string(cfg.Category.ResultTag()))
	sm.logger.InfoContext(ctx, "session started",
		"session_id", s.ID,
		"mode", cfg.Mode,
		"category", cfg.Category,
		"questions", s.View().Total,
	)
	return s, nil
}

// Get returns a registered session and marks it as recently used.
func (sm *SessionManager) Get(sessionID string) (*practicesession.PracticeSession, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	e, ok := sm.sessions[sessionID]
	if !ok {
		return nil, false
	}
	e.touched = sm.now()
	return e.session, true
}

// Remove abandons a session. It reports whether the session existed.
func (sm *SessionManager) Remove(sessionID string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[sessionID]; !ok {
		return false
	}
	delete(sm.sessions, sessionID)
	return true
}

func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Sweep drops sessions untouched for longer than maxIdle and returns how
// many were removed.
func (sm *SessionManager) Sweep(maxIdle time.Duration) int {
	cutoff := sm.now().Add(-maxIdle)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for sessionID, e := range sm.sessions {
		if e.touched.Before(cutoff) {
			delete(sm.sessions, sessionID)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (sm *SessionManager) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sm.Sweep(maxIdle); n > 0 {
				sm.logger.Info("idle sessions removed", "count", n)
			}
		}
	}
}
