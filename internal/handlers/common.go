package handlers

import (
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/models"

	"github.com/gin-gonic/gin"
)

// Type alias so swag can resolve the error envelope in annotations.
type ErrorResponse = apierr.Response

// fail records the error on the context and stops the handler chain; the
// error middleware maps it onto the taxonomy and renders the envelope.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

type CategoryListResponse struct {
	Success         bool            `json:"success"`
	TotalCategories int             `json:"total_categories"`
	Categories      map[uint]string `json:"categories"`
}

type QuestionListResponse struct {
	Success        bool              `json:"success"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []models.Question `json:"questions"`
	Categories     map[uint]string   `json:"categories"`
}

type SearchResponse struct {
	Success        bool              `json:"success"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []models.Question `json:"questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	TotalQuestions  int               `json:"total_questions"`
	Questions       []models.Question `json:"questions"`
	CurrentCategory string            `json:"current_category"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

func categoriesToMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}
