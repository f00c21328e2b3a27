package practicesession

import (
	"time"

	"github.com/roadready/backend/internal/domain/questionbank"
)

// OptionReview marks one option after submission.
type OptionReview struct {
	Index    int
	Text     string
	Correct  bool
	Selected bool
}

// Review is the revealed state of a submitted question.
type Review struct {
	QuestionIndex int
	QuestionID    string
	Selected      int
	CorrectAnswer int
	IsCorrect     bool
	Explanation   string
	Options       []OptionReview
}

// View is a point-in-time copy of everything a client can observe.
type View struct {
	ID     string
	Config SessionConfig
	State  State
	Empty  bool

	Current  int
	Total    int
	Question *questionbank.Question // nil when the draw was empty
	Selected int
	Answers  []int
	Review   *Review // set while the current question is being reviewed

	// populated once completed
	CorrectCount int
	Score        int
	Passed       bool

	StartedAt   time.Time
	CompletedAt time.Time
}

func (s *PracticeSession) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:          s.ID,
		Config:      s.Config,
		State:       s.state,
		Empty:       len(s.questions) == 0,
		Current:     s.current,
		Total:       len(s.questions),
		Selected:    Unanswered,
		Answers:     append([]int(nil), s.answers...),
		StartedAt:   s.startedAt,
		CompletedAt: s.completedAt,
	}

	if len(s.questions) > 0 {
		q := s.questions[s.current]
		q.Options = append([]string(nil), q.Options...)
		v.Question = &q
		v.Selected = s.answers[s.current]
	}

	if s.state == StateReviewing || s.state == StateCompleted {
		r := s.review()
		v.Review = &r
	}

	if s.state == StateCompleted {
		v.CorrectCount = s.correct
		v.Score = s.score
		v.Passed = Passed(s.score)
	}
	return v
}

// review builds the reveal for the current question. Caller holds mu.
func (s *PracticeSession) review() Review {
	q := s.questions[s.current]
	selected := s.answers[s.current]

	options := make([]OptionReview, len(q.Options))
	for i, text := range q.Options {
		options[i] = OptionReview{
			Index:    i,
			Text:     text,
			Correct:  i == q.CorrectAnswer,
			Selected: i == selected,
		}
	}

	return Review{
		QuestionIndex: s.current,
		QuestionID:    q.ID,
		Selected:      selected,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     q.IsCorrect(selected),
		Explanation:   q.Explanation,
		Options:       options,
	}
}
