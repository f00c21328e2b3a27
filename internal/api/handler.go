// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	practicesession "github.com/roadready/backend/internal/domain/practice_session"
	"github.com/roadready/backend/internal/domain/progress"
	"github.com/roadready/backend/internal/domain/questionbank"
	"github.com/roadready/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank     *questionbank.QuestionBank
	sessions *service.SessionManager
	tracker  *service.Tracker
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	bank *questionbank.QuestionBank,
	sessions *service.SessionManager,
	tracker *service.Tracker,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		bank:     bank,
		sessions: sessions,
		tracker:  tracker,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleDomainError maps domain errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleDomainError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, practicesession.ErrInvalidAnswerIndex),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrExamCategory),
		errors.Is(err, progress.ErrInvalidPatch):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, practicesession.ErrPrematureSubmit):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, practicesession.ErrAlreadySubmitted),
		errors.Is(err, practicesession.ErrNotReviewing),
		errors.Is(err, practicesession.ErrNotInProgress):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("unexpected error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// session loads the session named in the path, writing a 404 when absent.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*practicesession.PracticeSession, bool) {
	s, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}
