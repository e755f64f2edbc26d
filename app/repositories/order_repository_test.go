package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateWithEmptyProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{FullName: "Botir Aliev", PhoneNumber: "+998931112233", Region: "Samarkand"}
	require.NoError(t, repo.Create(ctx, order, nil))

	loaded, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, loaded.Status)
	assert.Empty(t, loaded.Products)
	assert.False(t, loaded.CreatedAt.IsZero())
}

func TestOrderCreateAttachesProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	first := createTestProduct(t, db, "First")
	second := createTestProduct(t, db, "Second")

	order := &models.Order{FullName: "Dilnoza Rashidova", PhoneNumber: "+998909876543", Region: "Bukhara"}
	require.NoError(t, repo.Create(ctx, order, []string{first.ID, second.ID}))

	loaded, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Products, 2)
}

func TestOrderCreateRejectsUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Real")

	order := &models.Order{FullName: "Botir Aliev", PhoneNumber: "+998931112233", Region: "Samarkand"}
	err := repo.Create(ctx, order, []string{product.ID, "ghost-product-id"})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields["products"], "ghost-product-id")

	// Nothing was persisted.
	orders, listErr := repo.List(ctx, OrderFilter{})
	require.NoError(t, listErr)
	assert.Empty(t, orders)
}

func TestOrderCreateIgnoresClientCreatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	bogus := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	order := &models.Order{FullName: "Botir Aliev", PhoneNumber: "+998931112233", Region: "Samarkand", CreatedAt: bogus}
	require.NoError(t, repo.Create(ctx, order, nil))

	loaded, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, loaded.CreatedAt.After(bogus))
}

func TestOrderListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	shipped := &models.Order{FullName: "A", PhoneNumber: "1", Region: "Tashkent", Status: models.OrderStatusShipped}
	require.NoError(t, repo.Create(ctx, shipped, nil))
	fresh := &models.Order{FullName: "B", PhoneNumber: "2", Region: "Fergana"}
	require.NoError(t, repo.Create(ctx, fresh, nil))

	byStatus, err := repo.List(ctx, OrderFilter{Status: models.OrderStatusShipped})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, shipped.ID, byStatus[0].ID)

	byRegion, err := repo.List(ctx, OrderFilter{Region: "Fergana"})
	require.NoError(t, err)
	require.Len(t, byRegion, 1)
	assert.Equal(t, fresh.ID, byRegion[0].ID)

	future := time.Now().Add(time.Hour)
	none, err := repo.List(ctx, OrderFilter{CreatedFrom: &future})
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(ctx, OrderFilter{CreatedTo: &future})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderUpdateKeepsCreatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Kept")
	order := &models.Order{FullName: "Old Name", PhoneNumber: "+998931112233", Region: "Samarkand"}
	require.NoError(t, repo.Create(ctx, order, nil))

	created, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, order.ID, OrderUpdate{
		FullName:     "New Name",
		PhoneNumber:  "+998935554433",
		Region:       "Khiva",
		Status:       models.OrderStatusProcessing,
		InternalNote: "called the customer",
		ProductIDs:   []string{product.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
	assert.Equal(t, "called the customer", updated.InternalNote)
	assert.Len(t, updated.Products, 1)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestOrderUpdateRejectsUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{FullName: "A", PhoneNumber: "1", Region: "Tashkent"}
	require.NoError(t, repo.Create(ctx, order, nil))

	_, err := repo.Update(ctx, order.ID, OrderUpdate{
		FullName:    "A",
		PhoneNumber: "1",
		Region:      "Tashkent",
		Status:      models.OrderStatusNew,
		ProductIDs:  []string{"ghost-product-id"},
	})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestOrderUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{FullName: "A", PhoneNumber: "1", Region: "Tashkent", InternalNote: "keep me"}
	require.NoError(t, repo.Create(ctx, order, nil))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered))

	loaded, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, loaded.Status)
	assert.Equal(t, "keep me", loaded.InternalNote)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "no-such-order", models.OrderStatusShipped), errs.ErrNotFound)
}
