package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/roadready/backend/internal/domain/progress"
)

type StatsResponse struct {
	TotalCorrect   int `json:"total_correct" example:"8"`
	CurrentStreak  int `json:"current_streak" example:"3"`
	BestScore      int `json:"best_score" example:"80"`
	TotalQuestions int `json:"total_questions" example:"10"`
	Accuracy       int `json:"accuracy" example:"80"`
}

// PatchStatsRequest overwrites the fields that are present.
type PatchStatsRequest struct {
	TotalCorrect   *int `json:"total_correct,omitempty"`
	CurrentStreak  *int `json:"current_streak,omitempty"`
	BestScore      *int `json:"best_score,omitempty"`
	TotalQuestions *int `json:"total_questions,omitempty"`
}

type ExamResultResponse struct {
	ID                string    `json:"id"`
	Score             int       `json:"score" example:"80"`
	Date              time.Time `json:"date"`
	Category          string    `json:"category,omitempty" example:"mixed"`
	QuestionsAnswered int       `json:"questions_answered" example:"10"`
	TimeSpent         int       `json:"time_spent" example:"0"`
}

type StreakResponse struct {
	Streak        int    `json:"streak" example:"3"`
	LastStudyDate string `json:"last_study_date,omitempty" example:"2026-10-17"`
}

type DayScoreResponse struct {
	Date    string `json:"date" example:"2026-10-17"`
	Weekday string `json:"weekday" example:"Sat"`
	Score   int    `json:"score" example:"80"`
	Count   int    `json:"count" example:"2"`
}

type CategoryScoreResponse struct {
	Category string `json:"category" example:"road-signs"`
	Title    string `json:"title" example:"Road Signs"`
	Score    int    `json:"score" example:"60"`
	Count    int    `json:"count" example:"1"`
}

type ProgressResponse struct {
	Stats      StatsResponse           `json:"stats"`
	Weekly     []DayScoreResponse      `json:"weekly"`
	Categories []CategoryScoreResponse `json:"categories"`
	Accuracy   int                     `json:"accuracy" example:"80"`
	Trend      int                     `json:"trend" example:"-5"`
	TotalExams int                     `json:"total_exams" example:"4"`
}

func toStatsResponse(s progress.UserStats) StatsResponse {
	return StatsResponse{
		TotalCorrect:   s.TotalCorrect,
		CurrentStreak:  s.CurrentStreak,
		BestScore:      s.BestScore,
		TotalQuestions: s.TotalQuestions,
		Accuracy:       s.Accuracy(),
	}
}

// getStats returns the lifetime counters.
// @Summary      Get stats
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toStatsResponse(h.tracker.Stats.Read(r.Context())))
}

// patchStats overwrites individual counters.
// @Summary      Patch stats
// @Description  Merges the supplied fields over the stored stats. Negative values, or a best score above 100, are rejected.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      PatchStatsRequest  true  "Fields to overwrite"
// @Success      200   {object}  StatsResponse
// @Failure      400   {object}  map[string]string
// @Router       /stats [patch]
func (h *Handler) patchStats(w http.ResponseWriter, r *http.Request) {
	var req PatchStatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stats, err := h.tracker.Stats.Write(r.Context(), progress.StatsPatch{
		TotalCorrect:   req.TotalCorrect,
		CurrentStreak:  req.CurrentStreak,
		BestScore:      req.BestScore,
		TotalQuestions: req.TotalQuestions,
	})
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toStatsResponse(stats))
}

// getHistory returns completed attempts, newest first.
// @Summary      Exam history
// @Tags         Progress
// @Produce      json
// @Param        limit  query     int  false  "Return at most this many results"
// @Success      200    {array}   ExamResultResponse
// @Failure      400    {object}  map[string]string
// @Router       /history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	results := h.tracker.History.Recent(r.Context(), limit)
	response := make([]ExamResultResponse, len(results))
	for i, res := range results {
		response[i] = ExamResultResponse{
			ID:                res.ID,
			Score:             res.Score,
			Date:              res.Date,
			Category:          string(res.Category),
			QuestionsAnswered: res.QuestionsAnswered,
			TimeSpent:         res.TimeSpent,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getStreak returns the current daily streak.
// @Summary      Daily streak
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  StreakResponse
// @Router       /streak [get]
func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := StreakResponse{Streak: h.tracker.Streak.Current(ctx)}
	if last := h.tracker.Streak.LastStudyDate(ctx); !last.IsZero() {
		resp.LastStudyDate = last.String()
	}
	respondJSON(w, http.StatusOK, resp)
}

// getProgress returns the weekly and per-category series.
// @Summary      Progress overview
// @Description  Weekly average scores for the last seven days, per-category averages, overall accuracy and the trend between the two most recent results.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ProgressResponse
// @Router       /progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	summary := h.tracker.Summary(r.Context())

	weekly := make([]DayScoreResponse, len(summary.Weekly))
	for i, d := range summary.Weekly {
		weekly[i] = DayScoreResponse{
			Date:    d.Date.String(),
			Weekday: d.Weekday.String()[:3],
			Score:   d.Score,
			Count:   d.Count,
		}
	}

	cats := make([]CategoryScoreResponse, len(summary.Categories))
	for i, c := range summary.Categories {
		cats[i] = CategoryScoreResponse{
			Category: string(c.Category),
			Title:    c.Category.Title(),
			Score:    c.Score,
			Count:    c.Count,
		}
	}

	respondJSON(w, http.StatusOK, ProgressResponse{
		Stats:      toStatsResponse(summary.Stats),
		Weekly:     weekly,
		Categories: cats,
		Accuracy:   summary.Accuracy,
		Trend:      summary.Trend,
		TotalExams: summary.TotalExams,
	})
}

// resetProgress clears stats, history and streak.
// @Summary      Reset all progress
// @Tags         Progress
// @Success      204
// @Router       /progress [delete]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	h.tracker.ResetAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
