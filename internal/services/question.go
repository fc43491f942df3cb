package services

import (
	"errors"
	"math"
	"strings"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/models"

	"gorm.io/gorm"
)

// QuestionsPerPage is the fixed page size of the paginated listing.
const QuestionsPerPage = 10

// maxPage bounds the page number so the offset computed in ListPage stays
// within int range.
const maxPage = math.MaxInt / QuestionsPerPage

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrMissingField     = errors.New("question and answer must not be empty")
)

// QuestionInput carries the create payload. Category is signed so a negative
// id binds cleanly and fails the existence check below instead of the bind.
type QuestionInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// ListPage returns the page-th slice of questions in ascending id order.
// Pages are 1-based; anything below 1 is treated as page 1. A page past the
// end yields an empty slice, never an error.
func (s *QuestionService) ListPage(page int) ([]models.Question, error) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	var questions []models.Question
	err := s.db.Order("id ASC").
		Offset((page - 1) * QuestionsPerPage).
		Limit(QuestionsPerPage).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Create(input QuestionInput) (*models.Question, error) {
	if input.Question == "" || input.Answer == "" {
		return nil, ErrMissingField
	}

	var category models.Category
	if err := s.db.First(&category, input.Category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   uint(input.Category),
		Difficulty: input.Difficulty,
	}

	tx := s.db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Delete(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Search matches term as a case-insensitive substring of the question text.
// An empty term matches every question.
func (s *QuestionService) Search(term string) ([]models.Question, error) {
	var questions []models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("LOWER(question) LIKE ?", pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ByCategory returns the category together with all of its questions so the
// handler can report the category name alongside the list.
func (s *QuestionService) ByCategory(categoryID uint) (*models.Category, []models.Question, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, err
	}

	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, nil, err
	}
	return &category, questions, nil
}
