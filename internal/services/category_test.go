package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesOrderedByID(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, 3, "Geography")
	seedCategory(t, db, 1, "Science")
	seedCategory(t, db, 2, "Art")

	svc := NewCategoryService(db)

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Art", categories[1].Type)
	assert.Equal(t, "Geography", categories[2].Type)
}

func TestListCategoriesEmptyTable(t *testing.T) {
	db := setupDB(t)

	svc := NewCategoryService(db)

	categories, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
