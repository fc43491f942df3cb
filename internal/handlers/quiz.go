package handlers

import (
	"net/http"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategoryInput struct {
	ID int `json:"id"`
}

type QuizRequest struct {
	// Zero or negative category id means any category.
	QuizCategory      QuizCategoryInput `json:"quiz_category"`
	PreviousQuestions []uint            `json:"previous_questions"`
}

// PlayQuiz godoc
// @Summary      Draw the next quiz question
// @Description  Returns a random question outside previous_questions, or null once the pool is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz round state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1.0/quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
