package progress

// NextStreak applies a study day to the stored streak. A second study on the
// same day changes nothing; a study the day after last extends the streak;
// anything else (a gap, or no previous study) starts over at 1.
func NextStreak(last Date, current int, today Date) (streak int, changed bool) {
	switch {
	case last == today:
		return current, false
	case !last.IsZero() && last.AddDays(1) == today:
		return current + 1, true
	default:
		return 1, true
	}
}
