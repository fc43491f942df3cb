package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoryListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1.0/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Success:         true,
		TotalCategories: len(categories),
		Categories:      categoriesToMap(categories),
	})
}

// QuestionsByCategory godoc
// @Summary      List every question of one category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1.0/categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apierr.NotFound)
		return
	}

	category, questions, err := h.questionService.ByCategory(uint(categoryID))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			fail(c, apierr.NotFound)
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		TotalQuestions:  len(questions),
		Questions:       questions,
		CurrentCategory: category.Type,
	})
}
