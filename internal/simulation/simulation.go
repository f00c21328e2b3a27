// simulation/simulation.go
package simulation

import (
	"context"
	"fmt"
	"math/rand"

	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/service"
	"github.com/roadready/backend/internal/worker"
)

// Plan describes a batch of simulated learners.
type Plan struct {
	Sessions int
	Workers  int
	// Accuracy is the chance each answer is correct, between 0 and 1.
	Accuracy float64
	Request  service.StartRequest
	Seed     int64
}

type Outcome struct {
	SessionID string
	Score     int
	Passed    bool
	Empty     bool
	Err       error
}

type Report struct {
	Completed    int
	Empty        int
	Failed       int
	Passed       int
	AverageScore int
	Outcomes     []Outcome
}

// Run drives Plan.Sessions sessions to completion through sm, answering
// each question from the bank's answer key. Completed sessions are recorded
// by the manager's recorder like any other.
func Run(ctx context.Context, sm *service.SessionManager, bank *questionbank.QuestionBank, plan Plan) Report {
	pool := worker.NewPool[Outcome](plan.Workers, plan.Sessions)

	go func() {
		for i := 0; i < plan.Sessions; i++ {
			rng := rand.New(rand.NewSource(plan.Seed + int64(i)))
			pool.Submit(fmt.Sprintf("learner-%d", i), func() Outcome {
				return play(ctx, sm, bank, plan, rng)
			})
		}
		pool.Close()
	}()

	var report Report
	sum := 0
	for res := range pool.Results() {
		o := res.Output
		report.Outcomes = append(report.Outcomes, o)
		switch {
		case o.Err != nil:
			report.Failed++
		case o.Empty:
			report.Empty++
		default:
			report.Completed++
			sum += o.Score
			if o.Passed {
				report.Passed++
			}
		}
	}
	if report.Completed > 0 {
		report.AverageScore = (2*sum + report.Completed) / (2 * report.Completed)
	}
	return report
}

func play(ctx context.Context, sm *service.SessionManager, bank *questionbank.QuestionBank, plan Plan, rng *rand.Rand) Outcome {
	s, err := sm.Start(ctx, plan.Request)
	if err != nil {
		return Outcome{Err: err}
	}
	if s.Empty() {
		return Outcome{Empty: true}
	}
	defer sm.Remove(s.ID)

	for s.State() != practicesession.StateCompleted {
		v := s.View()
		q, ok := bank.Get(v.Question.ID)
		if !ok {
			return Outcome{SessionID: s.ID, Err: fmt.Errorf("question %s not in bank", v.Question.ID)}
		}

		answer := q.CorrectAnswer
		if rng.Float64() >= plan.Accuracy {
			answer = (q.CorrectAnswer + 1 + rng.Intn(len(q.Options)-1)) % len(q.Options)
		}

		if err := s.SelectAnswer(answer); err != nil {
			return Outcome{SessionID: s.ID, Err: err}
		}
		if _, err := s.SubmitCurrent(); err != nil {
			return Outcome{SessionID: s.ID, Err: err}
		}
		if _, err := s.Advance(ctx); err != nil {
			return Outcome{SessionID: s.ID, Err: err}
		}
	}

	result, _ := s.Result()
	return Outcome{
		SessionID: s.ID,
		Score:     result.Score,
		Passed:    practicesession.Passed(result.Score),
	}
}
