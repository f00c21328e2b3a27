package progress

import (
	"fmt"
	"time"

	"github.com/roadready/backend/internal/domain/category"
)

// ExamResult is one completed attempt as stored in the history log.
type ExamResult struct {
	ID                string            `json:"id"`
	Score             int               `json:"score"`
	Date              time.Time         `json:"date"`
	Category          category.Category `json:"category,omitempty"`
	QuestionsAnswered int               `json:"questionsAnswered"`
	TimeSpent         int               `json:"timeSpent"` // seconds; always 0, elapsed time is not measured
}

func (r ExamResult) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidResult)
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: score %d out of range", ErrInvalidResult, r.Score)
	}
	if r.QuestionsAnswered < 0 {
		return fmt.Errorf("%w: negative question count", ErrInvalidResult)
	}
	return nil
}
