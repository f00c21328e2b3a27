package questionbank_test

import (
	"testing"

	"github.com/roadready/backend/internal/domain/category"
	"github.com/roadready/backend/internal/domain/questionbank"
)

func newQuestion(id string, cat category.Category) questionbank.Question {
	return questionbank.Question{
		ID:            id,
		Text:          "Question " + id,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: 1,
		Explanation:   "Because B.",
		Category:      cat,
	}
}

func TestDefaultBank(t *testing.T) {
	bank := questionbank.Default()

	if bank.Len() != 28 {
		t.Errorf("expected 28 questions, got %d", bank.Len())
	}

	for _, q := range bank.All() {
		if err := q.Validate(); err != nil {
			t.Errorf("invalid built-in question: %v", err)
		}
	}
}

func TestNew_RejectsOutOfRangeCorrectAnswer(t *testing.T) {
	q := newQuestion("q1", category.RoadSigns)
	q.CorrectAnswer = 4

	if _, err := questionbank.New(q); err == nil {
		t.Error("expected error for out-of-range correct answer, got nil")
	}
}

func TestNew_RejectsWrongOptionCount(t *testing.T) {
	q := newQuestion("q1", category.RoadSigns)
	q.Options = []string{"A", "B"}

	if _, err := questionbank.New(q); err == nil {
		t.Error("expected error for two options, got nil")
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := questionbank.New(
		newQuestion("q1", category.RoadSigns),
		newQuestion("q1", category.FirstAid),
	)
	if err == nil {
		t.Error("expected error for duplicate id, got nil")
	}
}

func TestNew_RejectsUnknownCategory(t *testing.T) {
	if _, err := questionbank.New(newQuestion("q1", category.Mixed)); err == nil {
		t.Error("expected error for mixed category on a question, got nil")
	}
}

func TestByCategory(t *testing.T) {
	bank := questionbank.Default()

	for _, c := range category.List() {
		questions := bank.ByCategory(c)
		if len(questions) == 0 {
			t.Errorf("expected questions for %q", c)
		}
		for _, q := range questions {
			if q.Category != c {
				t.Errorf("expected category %q, got %q", c, q.Category)
			}
		}
	}
}

func TestByCategory_AllReturnsWholeBank(t *testing.T) {
	bank := questionbank.Default()

	if got := len(bank.ByCategory(category.All)); got != bank.Len() {
		t.Errorf("expected %d questions, got %d", bank.Len(), got)
	}
	if got := len(bank.ByCategory("")); got != bank.Len() {
		t.Errorf("expected %d questions for empty category, got %d", bank.Len(), got)
	}
}

func TestByCategory_UnknownIsEmpty(t *testing.T) {
	bank := questionbank.Default()

	if got := bank.ByCategory("nonexistent-category"); len(got) != 0 {
		t.Errorf("expected no questions, got %d", len(got))
	}
}

func TestGet(t *testing.T) {
	bank := questionbank.Default()

	q, ok := bank.Get("fa4")
	if !ok {
		t.Fatal("expected fa4 to exist")
	}
	if q.Options[q.CorrectAnswer] != "30:2" {
		t.Errorf("expected correct option %q, got %q", "30:2", q.Options[q.CorrectAnswer])
	}

	if _, ok := bank.Get("missing"); ok {
		t.Error("expected missing question to be absent")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	bank := questionbank.Default()

	all := bank.All()
	all[0].Options[0] = "mutated"
	all[0].Text = "mutated"

	fresh := bank.All()
	if fresh[0].Options[0] == "mutated" || fresh[0].Text == "mutated" {
		t.Error("expected bank to be unaffected by caller mutation")
	}
}

func TestCountByCategory(t *testing.T) {
	counts := questionbank.Default().CountByCategory()

	want := map[category.Category]int{
		category.RoadSigns:    8,
		category.TrafficRules: 8,
		category.FirstAid:     6,
		category.Scenarios:    6,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("%s: expected %d, got %d", c, n, counts[c])
		}
	}
}

func TestQuestion_IsCorrect(t *testing.T) {
	q := newQuestion("q1", category.Scenarios)

	if !q.IsCorrect(1) {
		t.Error("expected index 1 to be correct")
	}
	if q.IsCorrect(0) {
		t.Error("expected index 0 to be incorrect")
	}
	if q.ValidAnswer(-1) || q.ValidAnswer(4) {
		t.Error("expected out-of-range answers to be invalid")
	}
}
