package questionbank_test

import (
	"math/rand"
	"testing"

	"github.com/roadready/backend/internal/domain/category"
	"github.com/roadready/backend/internal/domain/questionbank"
)

func TestSelectRandom_Length(t *testing.T) {
	bank := questionbank.Default()
	selector := questionbank.NewSelector(bank, rand.NewSource(1))

	tests := []struct {
		name  string
		count int
		cat   category.Category
		want  int
	}{
		{"fewer than pool", 10, category.All, 10},
		{"more than pool", 100, category.All, bank.Len()},
		{"category pool", 10, category.FirstAid, 6},
		{"exact category pool", 8, category.RoadSigns, 8},
		{"zero count", 0, category.All, 0},
		{"negative count", -3, category.All, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selector.SelectRandom(tt.count, tt.cat)
			if len(got) != tt.want {
				t.Errorf("expected %d questions, got %d", tt.want, len(got))
			}
		})
	}
}

func TestSelectRandom_SubsetWithoutDuplicates(t *testing.T) {
	bank := questionbank.Default()
	selector := questionbank.NewSelector(bank, rand.NewSource(7))

	for _, c := range append(category.List(), category.All) {
		pool := make(map[string]bool)
		for _, q := range bank.ByCategory(c) {
			pool[q.ID] = true
		}

		seen := make(map[string]bool)
		for _, q := range selector.SelectRandom(5, c) {
			if !pool[q.ID] {
				t.Errorf("%s: question %s is outside the pool", c, q.ID)
			}
			if seen[q.ID] {
				t.Errorf("%s: duplicate question %s", c, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSelectRandom_UnknownCategoryIsEmpty(t *testing.T) {
	selector := questionbank.NewSelector(questionbank.Default(), nil)

	got := selector.SelectRandom(10, "nonexistent-category")
	if got == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no questions, got %d", len(got))
	}
}

func TestSelectRandom_SameSeedSameDraw(t *testing.T) {
	bank := questionbank.Default()
	a := questionbank.NewSelector(bank, rand.NewSource(42)).SelectRandom(10, category.All)
	b := questionbank.NewSelector(bank, rand.NewSource(42)).SelectRandom(10, category.All)

	if !sameOrder(a, b) {
		t.Error("expected identical draws for identical seeds")
	}
}

func TestSelectRandom_RandomizesOrder(t *testing.T) {
	selector := questionbank.NewSelector(questionbank.Default(), rand.NewSource(3))

	// statistically almost certain with 28 questions
	first := selector.SelectRandom(28, category.All)
	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		if !sameOrder(first, selector.SelectRandom(28, category.All)) {
			foundDifferentOrder = true
			break
		}
	}

	if !foundDifferentOrder {
		t.Error("expected questions to be randomized across draws")
	}
}

func TestSelectRandom_EveryQuestionCanLeadTheDraw(t *testing.T) {
	bank := questionbank.Default()
	selector := questionbank.NewSelector(bank, rand.NewSource(11))

	first := make(map[string]int)
	for i := 0; i < 2000; i++ {
		first[selector.SelectRandom(1, category.FirstAid)[0].ID]++
	}

	// 6 questions, ~333 draws each; a biased shuffle would starve some
	for _, q := range bank.ByCategory(category.FirstAid) {
		if first[q.ID] < 200 {
			t.Errorf("question %s drawn first only %d times", q.ID, first[q.ID])
		}
	}
}

func sameOrder(a, b []questionbank.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
