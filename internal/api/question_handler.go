package api

import (
	"net/http"

	"github.com/roadready/backend/internal/domain/category"
	"github.com/roadready/backend/internal/domain/questionbank"
)

// QuestionResponse is a question without its answer, as shown while a
// session is in progress.
type QuestionResponse struct {
	ID       string   `json:"id" example:"rs1"`
	Text     string   `json:"text" example:"What does a red octagonal sign mean?"`
	Options  []string `json:"options"`
	Category string   `json:"category" example:"road-signs"`
}

// QuestionDetailResponse includes the answer and explanation.
type QuestionDetailResponse struct {
	QuestionResponse
	CorrectAnswer int    `json:"correct_answer" example:"0"`
	Explanation   string `json:"explanation"`
}

func toQuestionResponse(q questionbank.Question) QuestionResponse {
	return QuestionResponse{
		ID:       q.ID,
		Text:     q.Text,
		Options:  q.Options,
		Category: string(q.Category),
	}
}

func toQuestionDetail(q questionbank.Question) QuestionDetailResponse {
	return QuestionDetailResponse{
		QuestionResponse: toQuestionResponse(q),
		CorrectAnswer:    q.CorrectAnswer,
		Explanation:      q.Explanation,
	}
}

// listQuestions lists the bank, optionally filtered by category.
// @Summary      List questions
// @Description  Returns every question in the bank, or those of one category. An unknown category yields an empty list.
// @Tags         Questions
// @Produce      json
// @Param        category  query     string  false  "Category id, or all"
// @Success      200       {array}   QuestionDetailResponse
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.bank.ByCategory(category.Parse(r.URL.Query().Get("category")))

	response := make([]QuestionDetailResponse, len(questions))
	for i, q := range questions {
		response[i] = toQuestionDetail(q)
	}
	respondJSON(w, http.StatusOK, response)
}

// getQuestion returns a single question.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  QuestionDetailResponse
// @Failure      404         {object}  map[string]string
// @Router       /questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := h.bank.Get(r.PathValue("questionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}
	respondJSON(w, http.StatusOK, toQuestionDetail(q))
}
