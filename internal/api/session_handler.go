package api

import (
	"net/http"
	"time"

	"github.com/roadready/backend/internal/domain/category"
	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Category      string `json:"category,omitempty" example:"road-signs"`
	QuestionCount int    `json:"question_count,omitempty" example:"10"`
	Mode          string `json:"mode,omitempty" example:"practice"`
}

type SelectAnswerRequest struct {
	Answer *int `json:"answer" example:"1"`
}

type OptionReviewResponse struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Selected bool   `json:"selected"`
}

type ReviewResponse struct {
	QuestionID    string                 `json:"question_id"`
	Selected      int                    `json:"selected"`
	CorrectAnswer int                    `json:"correct_answer"`
	IsCorrect     bool                   `json:"is_correct"`
	Explanation   string                 `json:"explanation"`
	Options       []OptionReviewResponse `json:"options"`
}

type SessionResponse struct {
	ID               string            `json:"id,omitempty"`
	State            string            `json:"state" example:"in_progress"`
	Mode             string            `json:"mode" example:"practice"`
	Category         string            `json:"category" example:"all"`
	TimeLimitSeconds *int              `json:"time_limit_seconds,omitempty"`
	Current          int               `json:"current"`
	Total            int               `json:"total"`
	Question         *QuestionResponse `json:"question,omitempty"`
	Selected         *int              `json:"selected,omitempty"`
	Review           *ReviewResponse   `json:"review,omitempty"`
	CorrectCount     *int              `json:"correct_count,omitempty"`
	Score            *int              `json:"score,omitempty"`
	Passed           *bool             `json:"passed,omitempty"`
	StartedAt        *time.Time        `json:"started_at,omitempty"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
}

const stateEmpty = "empty"

func toSessionResponse(v practicesession.View) SessionResponse {
	resp := SessionResponse{
		ID:       v.ID,
		State:    string(v.State),
		Mode:     string(v.Config.Mode),
		Category: string(v.Config.Category),
		Current:  v.Current,
		Total:    v.Total,
	}
	if v.Config.TimeLimit != nil {
		secs := int(v.Config.TimeLimit.Seconds())
		resp.TimeLimitSeconds = &secs
	}
	if v.Empty {
		resp.State = stateEmpty
		return resp
	}

	if !v.StartedAt.IsZero() {
		resp.StartedAt = &v.StartedAt
	}
	if v.Question != nil {
		q := toQuestionResponse(*v.Question)
		resp.Question = &q
	}
	if v.Selected != practicesession.Unanswered {
		selected := v.Selected
		resp.Selected = &selected
	}
	if v.Review != nil {
		r := toReviewResponse(*v.Review)
		resp.Review = &r
	}
	if v.State == practicesession.StateCompleted {
		resp.CorrectCount = &v.CorrectCount
		resp.Score = &v.Score
		resp.Passed = &v.Passed
		resp.CompletedAt = &v.CompletedAt
	}
	return resp
}

func toReviewResponse(r practicesession.Review) ReviewResponse {
	options := make([]OptionReviewResponse, len(r.Options))
	for i, o := range r.Options {
		options[i] = OptionReviewResponse{
			Index:    o.Index,
			Text:     o.Text,
			Correct:  o.Correct,
			Selected: o.Selected,
		}
	}
	return ReviewResponse{
		QuestionID:    r.QuestionID,
		Selected:      r.Selected,
		CorrectAnswer: r.CorrectAnswer,
		IsCorrect:     r.IsCorrect,
		Explanation:   r.Explanation,
		Options:       options,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a new quiz session.
// @Summary      Start a session
// @Description  Draws a random question set and starts a practice quiz or exam. Exams always draw from every category; an exam request naming one category is rejected with 400. When the category has no questions the response has state "empty" and no session is created.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  false  "Session parameters"
// @Success      201   {object}  SessionResponse
// @Success      200   {object}  SessionResponse  "empty question pool"
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.QuestionCount < 0 {
		respondError(w, http.StatusBadRequest, "question_count must not be negative")
		return
	}

	s, err := h.sessions.Start(r.Context(), service.StartRequest{
		Category:      category.Parse(req.Category),
		QuestionCount: req.QuestionCount,
		Mode:          practicesession.Mode(req.Mode),
	})
	if h.handleDomainError(w, err) {
		return
	}

	if s.Empty() {
		// not registered, so there is no id to return
		resp := toSessionResponse(s.View())
		resp.ID = ""
		respondJSON(w, http.StatusOK, resp)
		return
	}
	respondJSON(w, http.StatusCreated, toSessionResponse(s.View()))
}

// getSession returns the observable state of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(s.View()))
}

// deleteSession abandons a session. Nothing is recorded.
// @Summary      Abandon a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Remove(r.PathValue("sessionID")) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// selectAnswer records the chosen option for the current question.
// @Summary      Select an answer
// @Description  Selecting again before submitting replaces the previous choice.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SelectAnswerRequest  true  "Option index"
// @Success      200        {object}  SessionResponse
// @Failure      400        {object}  map[string]string  "invalid answer index"
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "answer already submitted"
// @Router       /sessions/{sessionID}/answer [post]
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Answer == nil {
		respondError(w, http.StatusBadRequest, "answer is required")
		return
	}

	if h.handleDomainError(w, s.SelectAnswer(*req.Answer)) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(s.View()))
}

// submitAnswer locks in the current answer and reveals the correct option.
// @Summary      Submit the current answer
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Failure      422        {object}  map[string]string  "select an answer first"
// @Router       /sessions/{sessionID}/submit [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if _, err := s.SubmitCurrent(); h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(s.View()))
}

// advanceSession moves to the next question, or completes the session.
// @Summary      Advance
// @Description  After the last question the session is scored and the result recorded.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if _, err := s.Advance(r.Context()); h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(s.View()))
}

// restartSession discards progress and draws a fresh question set.
// @Summary      Restart a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/restart [post]
func (h *Handler) restartSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Restart()
	respondJSON(w, http.StatusOK, toSessionResponse(s.View()))
}
