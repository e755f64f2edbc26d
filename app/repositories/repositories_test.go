package repositories

import (
	"context"
	"testing"

	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, title string) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:         title,
		Description:   "test product",
		Price:         80,
		OriginalPrice: 100,
		Brand:         "Acme",
		InStock:       true,
		StockCount:    5,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))
	return product
}
