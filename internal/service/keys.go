package service

// Store keys. These names are the persisted format and must not change.
const (
	KeyUserStats     = "user_stats"
	KeyExamResults   = "exam_results"
	KeyDailyStreak   = "daily_streak"
	KeyLastStudyDate = "last_study_date"
)

// AllKeys is every key the progress tracker owns.
var AllKeys = []string{KeyUserStats, KeyExamResults, KeyDailyStreak, KeyLastStudyDate}

// lockOrder is the order in which several key locks may be held at once.
// StreakTracker.Touch holds daily_streak while it writes user_stats.
var lockOrder = []string{KeyDailyStreak, KeyLastStudyDate, KeyUserStats, KeyExamResults}
