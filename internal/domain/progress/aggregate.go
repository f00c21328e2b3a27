package progress

import (
	"time"

	"github.com/roadready/backend/internal/domain/category"
)

// WeekDays is the length of the weekly series.
const WeekDays = 7

type DayScore struct {
	Date    Date
	Weekday time.Weekday
	Score   int // average score of the day, 0 without results
	Count   int
}

type CategoryScore struct {
	Category category.Category
	Score    int // average score, 0 without results
	Count    int
}

// Summary is everything the progress screen shows.
type Summary struct {
	Stats      UserStats
	Weekly     []DayScore
	Categories []CategoryScore
	Accuracy   int
	Trend      int
	TotalExams int
}

// WeeklySeries averages scores per calendar day for the seven days ending
// today, oldest first. Result dates are read in loc.
func WeeklySeries(results []ExamResult, today Date, loc *time.Location) []DayScore {
	first := today.AddDays(-(WeekDays - 1))

	index := make(map[Date]int, WeekDays)
	series := make([]DayScore, WeekDays)
	for i := range series {
		d := first.AddDays(i)
		series[i] = DayScore{Date: d, Weekday: d.Weekday()}
		index[d] = i
	}

	sums := make([]int, WeekDays)
	for _, r := range results {
		i, ok := index[DateOf(r.Date, loc)]
		if !ok {
			continue
		}
		sums[i] += r.Score
		series[i].Count++
	}
	for i := range series {
		series[i].Score = average(sums[i], series[i].Count)
	}
	return series
}

// CategorySeries averages scores per fixed category. Mixed results count
// toward none of them.
func CategorySeries(results []ExamResult) []CategoryScore {
	cats := category.List()
	sums := make(map[category.Category]int, len(cats))
	counts := make(map[category.Category]int, len(cats))
	for _, r := range results {
		if !r.Category.Valid() {
			continue
		}
		sums[r.Category] += r.Score
		counts[r.Category]++
	}

	series := make([]CategoryScore, len(cats))
	for i, c := range cats {
		series[i] = CategoryScore{
			Category: c,
			Score:    average(sums[c], counts[c]),
			Count:    counts[c],
		}
	}
	return series
}

// Trend is the newest score minus the one before it, 0 with fewer than two
// results. results must be newest first.
func Trend(results []ExamResult) int {
	if len(results) < 2 {
		return 0
	}
	return results[0].Score - results[1].Score
}

// Summarize computes every derived series at now.
func Summarize(stats UserStats, results []ExamResult, now time.Time, loc *time.Location) Summary {
	return Summary{
		Stats:      stats,
		Weekly:     WeeklySeries(results, DateOf(now, loc), loc),
		Categories: CategorySeries(results),
		Accuracy:   stats.Accuracy(),
		Trend:      Trend(results),
		TotalExams: len(results),
	}
}

// average rounds sum/count half up.
func average(sum, count int) int {
	if count <= 0 {
		return 0
	}
	return (2*sum + count) / (2 * count)
}
