package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService}
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "1-based page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1.0/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	questions, err := h.questionService.ListPage(page)
	if err != nil {
		fail(c, err)
		return
	}

	categories, err := h.categoryService.List()
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:        true,
		TotalQuestions: len(questions),
		Questions:      questions,
		Categories:     categoriesToMap(categories),
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body services.QuestionInput true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/v1.0/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apierr.BadRequest)
		return
	}

	if _, err := h.questionService.Create(input); err != nil {
		if errors.Is(err, services.ErrMissingField) || errors.Is(err, services.ErrCategoryNotFound) {
			fail(c, apierr.Unprocessable)
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1.0/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apierr.NotFound)
		return
	}

	if err := h.questionService.Delete(uint(questionID)); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			fail(c, apierr.NotFound)
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{Success: true, ID: uint(questionID)})
}

// SearchQuestions godoc
// @Summary      Search questions by substring
// @Tags         questions
// @Produce      json
// @Param        search_term query string false "Case-insensitive substring of the question text"
// @Success      200 {object} SearchResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1.0/questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	term := c.Query("search_term")
	if term == "" {
		term = c.PostForm("search_term")
	}

	questions, err := h.questionService.Search(term)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		TotalQuestions: len(questions),
		Questions:      questions,
	})
}
