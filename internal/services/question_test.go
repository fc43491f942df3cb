package services

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, id uint, name string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Category{ID: id, Type: name}).Error)
}

func seedQuestion(t *testing.T, db *gorm.DB, id uint, text string, category uint) {
	t.Helper()
	q := models.Question{ID: id, Question: text, Answer: "answer", Category: category, Difficulty: 1}
	require.NoError(t, db.Create(&q).Error)
}

func TestListPage(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")
	for i := 1; i <= 12; i++ {
		seedQuestion(t, db, uint(i), fmt.Sprintf("question %d", i), 1)
	}

	svc := NewQuestionService(db)

	first, err := svc.ListPage(1)
	require.NoError(t, err)
	require.Len(t, first, QuestionsPerPage)
	assert.Equal(t, uint(1), first[0].ID)
	assert.Equal(t, uint(10), first[9].ID)

	second, err := svc.ListPage(2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, uint(11), second[0].ID)

	third, err := svc.ListPage(3)
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestListPageClampsLowPages(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")
	seedQuestion(t, db, 1, "only one", 1)

	svc := NewQuestionService(db)

	for _, page := range []int{0, -3} {
		questions, err := svc.ListPage(page)
		require.NoError(t, err)
		assert.Len(t, questions, 1)
	}
}

func TestListPageHugePageNumber(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")
	seedQuestion(t, db, 1, "only one", 1)

	svc := NewQuestionService(db)

	// The offset must not wrap around into a page that exists.
	questions, err := svc.ListPage(math.MaxInt)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCreateQuestion(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 2, "Art")

	svc := NewQuestionService(db)

	created, err := svc.Create(QuestionInput{
		Question:   "La Giaconda is better known as what?",
		Answer:     "Mona Lisa",
		Category:   2,
		Difficulty: 3,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	var stored models.Question
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "Mona Lisa", stored.Answer)
	assert.Equal(t, uint(2), stored.Category)
	assert.Equal(t, 3, stored.Difficulty)
}

func TestCreateQuestionRejectsEmptyFields(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")

	svc := NewQuestionService(db)

	_, err := svc.Create(QuestionInput{Question: "", Answer: "Mars", Category: 1})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.Create(QuestionInput{Question: "Which planet?", Answer: "", Category: 1})
	assert.ErrorIs(t, err, ErrMissingField)

	var count int64
	db.Model(&models.Question{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateQuestionRejectsUnknownCategory(t *testing.T) {
	db := setupDB(t)

	svc := NewQuestionService(db)

	for _, category := range []int{42, 0, -1} {
		_, err := svc.Create(QuestionInput{Question: "Which planet?", Answer: "Mars", Category: category})
		assert.ErrorIs(t, err, ErrCategoryNotFound, "category %d", category)
	}
}

func TestDeleteQuestion(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")
	seedQuestion(t, db, 7, "to delete", 1)

	svc := NewQuestionService(db)

	require.NoError(t, svc.Delete(7))

	var count int64
	db.Model(&models.Question{}).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(7), ErrQuestionNotFound)
}

func TestSearchMatchesSubstringAnyCase(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 3, "Geography")
	seedQuestion(t, db, 1, "The Taj Mahal is located in which Indian city?", 3)
	seedQuestion(t, db, 2, "What is the largest lake in Africa?", 3)

	svc := NewQuestionService(db)

	for _, term := range []string{"Indian", "indian", "INDIAN", "taj mahal"} {
		questions, err := svc.Search(term)
		require.NoError(t, err)
		require.Len(t, questions, 1, "term %q", term)
		assert.Equal(t, uint(1), questions[0].ID)
	}

	questions, err := svc.Search("")
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	questions, err = svc.Search("nowhere")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestByCategory(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 1, "Science")
	seedCategory(t, db, 2, "Art")
	seedQuestion(t, db, 1, "science question", 1)
	seedQuestion(t, db, 2, "art question", 2)
	seedQuestion(t, db, 3, "another science question", 1)

	svc := NewQuestionService(db)

	category, questions, err := svc.ByCategory(1)
	require.NoError(t, err)
	assert.Equal(t, "Science", category.Type)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, uint(1), q.Category)
	}
}

func TestByCategoryUnknownID(t *testing.T) {
	db := setupDB(t)

	svc := NewQuestionService(db)

	_, _, err := svc.ByCategory(99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
