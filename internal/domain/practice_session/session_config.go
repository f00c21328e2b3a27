package practicesession

import (
	"time"

	"github.com/roadready/backend/internal/domain/category"
)

type Mode string

const (
	ModePractice Mode = "practice"
	ModeExam     Mode = "exam"
)

const (
	DefaultPracticeQuestions = 10
	DefaultExamQuestions     = 40
	DefaultExamTimeLimit     = 45 * time.Minute

	// PassThreshold is the score shown as a pass. Display only, sessions
	// complete the same way either side of it.
	PassThreshold = 70
)

// SessionConfig holds the parameters a session draws with. Restart reuses it.
type SessionConfig struct {
	QuestionCount int
	Category      category.Category
	Mode          Mode
	TimeLimit     *time.Duration // reported to the client, never enforced
}

// DefaultConfig returns a 10-question practice quiz over the whole bank.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		QuestionCount: DefaultPracticeQuestions,
		Category:      category.All,
		Mode:          ModePractice,
		TimeLimit:     nil,
	}
}

// ExamConfig returns a full practice exam across all categories.
func ExamConfig(questions int, limit time.Duration) SessionConfig {
	if questions <= 0 {
		questions = DefaultExamQuestions
	}
	return SessionConfig{
		QuestionCount: questions,
		Category:      category.All,
		Mode:          ModeExam,
		TimeLimit:     &limit,
	}
}

// Passed reports whether score reaches PassThreshold.
func Passed(score int) bool {
	return score >= PassThreshold
}
