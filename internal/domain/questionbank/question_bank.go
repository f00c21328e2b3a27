package questionbank

import (
	"errors"
	"fmt"

	"github.com/roadready/backend/internal/domain/category"
)

// OptionCount is the number of choices every question offers.
const OptionCount = 4

type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectAnswer int // index into Options
	Explanation   string
	Category      category.Category
}

// IsCorrect reports whether answer is the index of the correct option.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}

// ValidAnswer reports whether answer indexes one of the options.
func (q Question) ValidAnswer(answer int) bool {
	return answer >= 0 && answer < len(q.Options)
}

func (q Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id cannot be empty")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text cannot be empty", q.ID)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %s: expected %d options, got %d", q.ID, OptionCount, len(q.Options))
	}
	if !q.ValidAnswer(q.CorrectAnswer) {
		return fmt.Errorf("question %s: correct answer %d out of range", q.ID, q.CorrectAnswer)
	}
	if !q.Category.Valid() {
		return fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
	}
	return nil
}

// QuestionBank is an immutable catalog of questions. Accessors hand out
// copies so callers cannot mutate the bank.
type QuestionBank struct {
	questions []Question
	byID      map[string]int
}

// New builds a bank from questions, rejecting invalid entries and
// duplicate ids.
func New(questions ...Question) (*QuestionBank, error) {
	qb := &QuestionBank{
		questions: make([]Question, 0, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := qb.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		q.Options = append([]string(nil), q.Options...)
		qb.byID[q.ID] = len(qb.questions)
		qb.questions = append(qb.questions, q)
	}
	return qb, nil
}

// Default returns the built-in driving-test bank.
func Default() *QuestionBank {
	qb, err := New(catalog...)
	if err != nil {
		panic("questionbank: invalid built-in catalog: " + err.Error())
	}
	return qb
}

// All returns every question in catalog order.
func (qb *QuestionBank) All() []Question {
	return qb.copyOf(qb.questions)
}

// ByCategory returns the questions of c. All (or an empty value) returns the
// whole bank; an unrecognized category matches nothing.
func (qb *QuestionBank) ByCategory(c category.Category) []Question {
	if c.IsAll() {
		return qb.All()
	}
	var matched []Question
	for _, q := range qb.questions {
		if q.Category == c {
			matched = append(matched, q)
		}
	}
	return qb.copyOf(matched)
}

func (qb *QuestionBank) Get(id string) (Question, bool) {
	i, ok := qb.byID[id]
	if !ok {
		return Question{}, false
	}
	return qb.copyOf(qb.questions[i : i+1])[0], true
}

func (qb *QuestionBank) Len() int {
	return len(qb.questions)
}

// CountByCategory returns how many questions each fixed category holds.
func (qb *QuestionBank) CountByCategory() map[category.Category]int {
	counts := make(map[category.Category]int, len(category.List()))
	for _, c := range category.List() {
		counts[c] = 0
	}
	for _, q := range qb.questions {
		counts[q.Category]++
	}
	return counts
}

func (qb *QuestionBank) copyOf(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
