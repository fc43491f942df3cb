package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedCategoriesPopulatesFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedCategories(db))

	var categories []models.Category
	require.NoError(t, db.Order("id ASC").Find(&categories).Error)
	require.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedCategories(db))
	require.NoError(t, SeedCategories(db))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}

func TestSeedCategoriesKeepsExistingRows(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&models.Category{ID: 1, Type: "Custom"}).Error)
	require.NoError(t, SeedCategories(db))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var cat models.Category
	require.NoError(t, db.First(&cat, 1).Error)
	assert.Equal(t, "Custom", cat.Type)
}
