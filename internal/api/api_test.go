package api_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roadready/backend/internal/api"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/service"
	"github.com/roadready/backend/internal/store"
)

type testServer struct {
	mux  http.Handler
	bank *questionbank.QuestionBank
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	bank := questionbank.Default()
	now := func() time.Time { return time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC) }

	tracker := service.NewTracker(store.NewMemory(), nil, nil,
		service.WithClock(now),
		service.WithLocation(time.UTC),
	)
	sessions := service.NewSessionManager(
		questionbank.NewSelector(bank, rand.NewSource(7)),
		tracker,
		service.SessionDefaults{},
		nil,
		nil,
		service.WithSessionClock(now),
	)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(bank, sessions, tracker, nil))
	return &testServer{mux: api.CORS(mux), bank: bank}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func TestListCategories(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/categories", nil)
	expectStatus(t, rec, http.StatusOK)

	cats := decode[[]api.CategoryResponse](t, rec)
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}
	total := 0
	for _, c := range cats {
		total += c.QuestionCount
	}
	if total != ts.bank.Len() {
		t.Errorf("expected counts to sum to %d, got %d", ts.bank.Len(), total)
	}
}

func TestListQuestions(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/questions?category=first-aid", nil)
	expectStatus(t, rec, http.StatusOK)
	for _, q := range decode[[]api.QuestionDetailResponse](t, rec) {
		if q.Category != "first-aid" {
			t.Errorf("expected first-aid, got %s", q.Category)
		}
	}

	rec = ts.do(t, http.MethodGet, "/questions?category=parking", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[[]api.QuestionDetailResponse](t, rec); len(got) != 0 {
		t.Errorf("expected empty list for unknown category, got %d", len(got))
	}
}

func TestGetQuestion(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/questions/rs1", nil)
	expectStatus(t, rec, http.StatusOK)
	if q := decode[api.QuestionDetailResponse](t, rec); q.ID != "rs1" || len(q.Options) != 4 {
		t.Errorf("unexpected question %+v", q)
	}

	rec = ts.do(t, http.MethodGet, "/questions/nope", nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestCreateSession_EmptyPool(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/sessions", api.CreateSessionRequest{Category: "parking"})
	expectStatus(t, rec, http.StatusOK)

	resp := decode[api.SessionResponse](t, rec)
	if resp.State != "empty" || resp.ID != "" || resp.Total != 0 {
		t.Errorf("expected empty state without id, got %+v", resp)
	}
}

func TestCreateSession_InvalidMode(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/sessions", api.CreateSessionRequest{Mode: "timed"})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestCreateSession_ExamWithCategory(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/sessions", api.CreateSessionRequest{Mode: "exam", Category: "first-aid"})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestCreateSession_Exam(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/sessions", api.CreateSessionRequest{Mode: "exam"})
	expectStatus(t, rec, http.StatusCreated)

	resp := decode[api.SessionResponse](t, rec)
	if resp.Mode != "exam" {
		t.Errorf("expected exam mode, got %s", resp.Mode)
	}
	if resp.Total != ts.bank.Len() {
		t.Errorf("expected the whole bank (%d), got %d", ts.bank.Len(), resp.Total)
	}
	if resp.TimeLimitSeconds == nil || *resp.TimeLimitSeconds != 45*60 {
		t.Errorf("expected 45 minute limit, got %v", resp.TimeLimitSeconds)
	}
}

func TestSessionFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/sessions", api.CreateSessionRequest{Category: "road-signs", QuestionCount: 2})
	expectStatus(t, rec, http.StatusCreated)
	session := decode[api.SessionResponse](t, rec)
	if session.State != "in_progress" || session.Total != 2 {
		t.Fatalf("unexpected session %+v", session)
	}
	base := "/sessions/" + session.ID

	// submitting without a selection is rejected
	expectStatus(t, ts.do(t, http.MethodPost, base+"/submit", nil), http.StatusUnprocessableEntity)
	// out of range option
	expectStatus(t, ts.do(t, http.MethodPost, base+"/answer", map[string]int{"answer": 9}), http.StatusBadRequest)
	// advancing before review
	expectStatus(t, ts.do(t, http.MethodPost, base+"/advance", nil), http.StatusConflict)

	for i := 0; i < 2; i++ {
		current := decode[api.SessionResponse](t, ts.do(t, http.MethodGet, base, nil))
		q, ok := ts.bank.Get(current.Question.ID)
		if !ok {
			t.Fatalf("unknown question %s", current.Question.ID)
		}
		answer := q.CorrectAnswer
		if i == 1 {
			answer = (q.CorrectAnswer + 1) % len(q.Options)
		}

		expectStatus(t, ts.do(t, http.MethodPost, base+"/answer", map[string]int{"answer": answer}), http.StatusOK)

		rec = ts.do(t, http.MethodPost, base+"/submit", nil)
		expectStatus(t, rec, http.StatusOK)
		reviewed := decode[api.SessionResponse](t, rec)
		if reviewed.Review == nil || reviewed.Review.CorrectAnswer != q.CorrectAnswer {
			t.Fatalf("expected review revealing %d, got %+v", q.CorrectAnswer, reviewed.Review)
		}

		expectStatus(t, ts.do(t, http.MethodPost, base+"/answer", map[string]int{"answer": 0}), http.StatusConflict)
		expectStatus(t, ts.do(t, http.MethodPost, base+"/advance", nil), http.StatusOK)
	}

	done := decode[api.SessionResponse](t, ts.do(t, http.MethodGet, base, nil))
	if done.State != "completed" {
		t.Fatalf("expected completed, got %s", done.State)
	}
	if done.Score == nil || *done.Score != 50 {
		t.Errorf("expected score 50, got %v", done.Score)
	}
	if done.Passed == nil || *done.Passed {
		t.Errorf("expected not passed, got %v", done.Passed)
	}

	stats := decode[api.StatsResponse](t, ts.do(t, http.MethodGet, "/stats", nil))
	if stats.TotalCorrect != 1 || stats.TotalQuestions != 2 || stats.BestScore != 50 || stats.CurrentStreak != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	history := decode[[]api.ExamResultResponse](t, ts.do(t, http.MethodGet, "/history?limit=5", nil))
	if len(history) != 1 || history[0].Category != "road-signs" {
		t.Errorf("unexpected history %+v", history)
	}

	streak := decode[api.StreakResponse](t, ts.do(t, http.MethodGet, "/streak", nil))
	if streak.Streak != 1 || streak.LastStudyDate != "2026-10-17" {
		t.Errorf("unexpected streak %+v", streak)
	}

	progress := decode[api.ProgressResponse](t, ts.do(t, http.MethodGet, "/progress", nil))
	if len(progress.Weekly) != 7 || progress.Weekly[6].Score != 50 {
		t.Errorf("unexpected weekly series %+v", progress.Weekly)
	}
}

func TestRestartAndDeleteSession(t *testing.T) {
	ts := newTestServer(t)

	session := decode[api.SessionResponse](t, ts.do(t, http.MethodPost, "/sessions", nil))
	base := "/sessions/" + session.ID

	ts.do(t, http.MethodPost, base+"/answer", map[string]int{"answer": 1})
	rec := ts.do(t, http.MethodPost, base+"/restart", nil)
	expectStatus(t, rec, http.StatusOK)
	restarted := decode[api.SessionResponse](t, rec)
	if restarted.Current != 0 || restarted.Selected != nil {
		t.Errorf("expected a fresh session, got %+v", restarted)
	}

	expectStatus(t, ts.do(t, http.MethodDelete, base, nil), http.StatusNoContent)
	expectStatus(t, ts.do(t, http.MethodGet, base, nil), http.StatusNotFound)
	expectStatus(t, ts.do(t, http.MethodDelete, base, nil), http.StatusNotFound)
}

func TestPatchStats(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPatch, "/stats", map[string]int{"best_score": 90})
	expectStatus(t, rec, http.StatusOK)
	if got := decode[api.StatsResponse](t, rec); got.BestScore != 90 || got.TotalCorrect != 0 {
		t.Errorf("unexpected stats %+v", got)
	}

	expectStatus(t, ts.do(t, http.MethodPatch, "/stats", map[string]int{"total_correct": -2}), http.StatusBadRequest)
	expectStatus(t, ts.do(t, http.MethodPatch, "/stats", map[string]int{"unknown": 1}), http.StatusBadRequest)
}

func TestResetProgress(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPatch, "/stats", map[string]int{"total_correct": 4, "total_questions": 5})

	expectStatus(t, ts.do(t, http.MethodDelete, "/progress", nil), http.StatusNoContent)

	stats := decode[api.StatsResponse](t, ts.do(t, http.MethodGet, "/stats", nil))
	if stats != (api.StatsResponse{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestHistory_InvalidLimit(t *testing.T) {
	ts := newTestServer(t)

	expectStatus(t, ts.do(t, http.MethodGet, "/history?limit=abc", nil), http.StatusBadRequest)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodOptions, "/sessions", nil)
	expectStatus(t, rec, http.StatusNoContent)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected %q, got %q", "*", got)
	}
}
