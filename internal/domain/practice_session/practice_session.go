package practicesession

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/roadready/backend/internal/domain/category"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/id"
)

// State is the lifecycle position of a session.
//
//	Loading -> InProgress -> Reviewing -> InProgress ... -> Completed
//
// A session whose draw came back empty stays in Loading.
type State string

const (
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateReviewing  State = "reviewing"
	StateCompleted  State = "completed"
)

// Unanswered marks a question with no selected option.
const Unanswered = -1

var (
	ErrNotInProgress      = errors.New("session is not in progress")
	ErrInvalidAnswerIndex = errors.New("answer index out of range")
	ErrAlreadySubmitted   = errors.New("answer already submitted")
	ErrPrematureSubmit    = errors.New("select an answer first")
	ErrNotReviewing       = errors.New("current answer has not been submitted")
)

// Selector supplies the question set for a session.
type Selector interface {
	SelectRandom(count int, c category.Category) []questionbank.Question
}

// Result is what survives a completed session.
type Result struct {
	SessionID      string
	Category       category.Category // Mixed for whole-bank sessions
	Mode           Mode
	CorrectCount   int
	TotalQuestions int
	Score          int
	CompletedAt    time.Time
}

// Recorder receives the result of every completed session. Implementations
// own their failure handling; nothing is reported back to the session.
type Recorder interface {
	RecordCompletion(ctx context.Context, result Result)
}

// PracticeSession drives one quiz attempt. It is never persisted; only its
// Result is handed to the Recorder.
type PracticeSession struct {
	ID     string
	Config SessionConfig

	selector Selector
	recorder Recorder
	now      func() time.Time

	mu          sync.Mutex
	state       State
	questions   []questionbank.Question
	answers     []int
	current     int
	correct     int
	score       int
	startedAt   time.Time
	completedAt time.Time
}

type Option func(*PracticeSession)

func WithRecorder(r Recorder) Option {
	return func(s *PracticeSession) { s.recorder = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *PracticeSession) { s.now = now }
}

// New creates a session in the Loading state. Call Start to draw questions.
func New(selector Selector, config SessionConfig, opts ...Option) *PracticeSession {
	if config.Category == "" {
		config.Category = category.All
	}
	if config.Mode == "" {
		config.Mode = ModePractice
	}
	s := &PracticeSession{
		ID:       id.GenerateID(),
		Config:   config,
		selector: selector,
		now:      time.Now,
		state:    StateLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start draws a fresh question set and moves to InProgress. When the draw is
// empty the session stays in Loading and Start returns false.
func (s *PracticeSession) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start()
}

func (s *PracticeSession) start() bool {
	questions := s.selector.SelectRandom(s.Config.QuestionCount, s.Config.Category)

	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}

	s.questions = questions
	s.answers = answers
	s.current = 0
	s.correct = 0
	s.score = 0
	s.startedAt = s.now()
	s.completedAt = time.Time{}

	if len(questions) == 0 {
		s.state = StateLoading
		return false
	}
	s.state = StateInProgress
	return true
}

// Restart discards all progress and starts over with a new draw using the
// same configuration.
func (s *PracticeSession) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start()
}

// SelectAnswer records answer for the current question. Selecting again
// before submitting replaces the previous choice.
func (s *PracticeSession) SelectAnswer(answer int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateInProgress:
	case StateReviewing:
		return ErrAlreadySubmitted
	default:
		return ErrNotInProgress
	}

	if !s.questions[s.current].ValidAnswer(answer) {
		return ErrInvalidAnswerIndex
	}

	s.answers[s.current] = answer
	return nil
}

// SubmitCurrent locks in the current answer and reveals which options are
// correct.
func (s *PracticeSession) SubmitCurrent() (Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateInProgress:
	case StateReviewing:
		return Review{}, ErrAlreadySubmitted
	default:
		return Review{}, ErrNotInProgress
	}

	if s.answers[s.current] == Unanswered {
		return Review{}, ErrPrematureSubmit
	}

	s.state = StateReviewing
	return s.review(), nil
}

// Advance moves past a reviewed question. After the last question it scores
// the session, moves to Completed and hands the result to the Recorder.
func (s *PracticeSession) Advance(ctx context.Context) (State, error) {
	s.mu.Lock()

	if s.state != StateReviewing {
		state := s.state
		s.mu.Unlock()
		if state == StateInProgress {
			return state, ErrNotReviewing
		}
		return state, ErrNotInProgress
	}

	if s.current < len(s.questions)-1 {
		s.current++
		s.state = StateInProgress
		s.mu.Unlock()
		return StateInProgress, nil
	}

	s.correct = s.correctCount()
	s.score = Score(s.correct, len(s.questions))
	s.completedAt = s.now()
	s.state = StateCompleted
	result := s.result()
	recorder := s.recorder
	s.mu.Unlock()

	if recorder != nil {
		recorder.RecordCompletion(ctx, result)
	}
	return StateCompleted, nil
}

// Result returns the outcome once the session is completed.
func (s *PracticeSession) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return Result{}, false
	}
	return s.result(), true
}

func (s *PracticeSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Empty reports whether the last draw produced no questions.
func (s *PracticeSession) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions) == 0
}

func (s *PracticeSession) correctCount() int {
	n := 0
	for i, q := range s.questions {
		if q.IsCorrect(s.answers[i]) {
			n++
		}
	}
	return n
}

func (s *PracticeSession) result() Result {
	return Result{
		SessionID:      s.ID,
		Category:       s.Config.Category.ResultTag(),
		Mode:           s.Config.Mode,
		CorrectCount:   s.correct,
		TotalQuestions: len(s.questions),
		Score:          s.score,
		CompletedAt:    s.completedAt,
	}
}

// Score is round(100 * correct / total), halves rounded up. Zero questions
// score 0.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}
