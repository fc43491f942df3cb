package services

import (
	"errors"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion picks one random question that has not been asked yet.
// categoryID restricts the pool when positive; zero or negative means any
// category. A categoryID with no questions behaves like an exhausted pool.
// Returns nil without error when no candidate remains.
func (s *QuizService) NextQuestion(categoryID int, previousQuestions []uint) (*models.Question, error) {
	query := s.db.Order("RANDOM()")
	if categoryID > 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previousQuestions) > 0 {
		query = query.Where("id NOT IN ?", previousQuestions)
	}

	var question models.Question
	if err := query.First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
