package repositories

import (
	"context"
	"testing"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.GetByID(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProductTagsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Tagged")
	product.Tags = models.StringList{"a", "b", "c"}
	product.Features = models.StringList{"fast", "cheap"}
	require.NoError(t, repo.Update(ctx, product))

	loaded, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"a", "b", "c"}, loaded.Tags)
	assert.Equal(t, models.StringList{"fast", "cheap"}, loaded.Features)
}

func TestProductUpdateWritesZeroValues(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Gadget")
	product.InStock = false
	product.StockCount = 0
	require.NoError(t, repo.Update(ctx, product))

	loaded, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, loaded.InStock)
	assert.Zero(t, loaded.StockCount)
}

func TestProductImagesOrderedByPosition(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Pictured")
	for _, path := range []string{"first.jpg", "second.jpg", "third.jpg"} {
		require.NoError(t, repo.AddImage(ctx, &models.ProductImage{ProductID: product.ID, Path: path}))
	}

	loaded, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Images, 3)
	assert.Equal(t, "first.jpg", loaded.Images[0].Path)
	assert.Equal(t, "second.jpg", loaded.Images[1].Path)
	assert.Equal(t, "third.jpg", loaded.Images[2].Path)
	assert.Equal(t, "first.jpg", loaded.FirstImage().Path)
}

func TestProductDeleteDropsImagesAndOrderLinks(t *testing.T) {
	db := openTestDB(t)
	productRepo := NewProductRepository(db)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Doomed")
	require.NoError(t, productRepo.AddImage(ctx, &models.ProductImage{ProductID: product.ID, Path: "doomed.jpg"}))

	order := &models.Order{FullName: "Aziza Karimova", PhoneNumber: "+998901234567", Region: "Tashkent"}
	require.NoError(t, orderRepo.Create(ctx, order, []string{product.ID}))

	require.NoError(t, productRepo.Delete(ctx, product.ID))

	_, err := productRepo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	var imageCount int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	// The order survives with the link dropped.
	survivor, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, survivor.Products)
}

func TestProductDeleteUnknownID(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)

	err := repo.Delete(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
