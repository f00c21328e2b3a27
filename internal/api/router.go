// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every API endpoint onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Question bank
	mux.HandleFunc("GET /categories", h.listCategories)
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/{questionID}", h.getQuestion)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answer", h.selectAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/submit", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("POST /sessions/{sessionID}/restart", h.restartSession)

	// Progress
	mux.HandleFunc("GET /stats", h.getStats)
	mux.HandleFunc("PATCH /stats", h.patchStats)
	mux.HandleFunc("GET /history", h.getHistory)
	mux.HandleFunc("GET /streak", h.getStreak)
	mux.HandleFunc("GET /progress", h.getProgress)
	mux.HandleFunc("DELETE /progress", h.resetProgress)
}
