package api

import (
	"net/http"

	"github.com/roadready/backend/internal/domain/category"
)

type CategoryResponse struct {
	ID            string `json:"id" example:"road-signs"`
	Title         string `json:"title" example:"Road Signs"`
	QuestionCount int    `json:"question_count" example:"8"`
}

// listCategories lists the fixed categories with their question counts.
// @Summary      List categories
// @Description  Returns the four question categories with the number of questions in each.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	counts := h.bank.CountByCategory()
	cats := category.List()

	response := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		response[i] = CategoryResponse{
			ID:            string(c),
			Title:         c.Title(),
			QuestionCount: counts[c],
		}
	}
	respondJSON(w, http.StatusOK, response)
}
