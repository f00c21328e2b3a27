package questionbank

import (
	"math/rand"
	"sync"
	"time"

	"github.com/roadready/backend/internal/domain/category"
)

// Selector draws random question sets from a bank.
type Selector struct {
	bank *QuestionBank

	mu  sync.Mutex // guards rng, *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewSelector creates a Selector over bank. A nil src seeds from the clock;
// tests pass a fixed source for a reproducible draw.
func NewSelector(bank *QuestionBank, src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{
		bank: bank,
		rng:  rand.New(src),
	}
}

// SelectRandom returns min(count, pool) distinct questions of c in random
// order. The pool is the whole bank when c is All. An empty pool, or a
// non-positive count, yields an empty slice.
func (s *Selector) SelectRandom(count int, c category.Category) []Question {
	pool := s.bank.ByCategory(c)
	if count <= 0 || len(pool) == 0 {
		return []Question{}
	}
	if count > len(pool) {
		count = len(pool)
	}

	order := s.permutation(len(pool))

	selected := make([]Question, count)
	for i := range selected {
		selected[i] = pool[order[i]]
	}
	return selected
}

// permutation shuffles an index array with Fisher-Yates.
func (s *Selector) permutation(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx
}
