package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davlatbek/go-catalog/app/configs"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/models/migrations"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/davlatbek/go-catalog/app/routes"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	env := configs.ENV{
		AppEnv:    "test",
		MediaRoot: t.TempDir(),
		MediaURL:  "/media/",
	}
	router, err := routes.NewRouter(db, env)
	require.NoError(t, err)
	return router, db
}

func doJSON(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	router, db := setupServer(t)
	ctx := context.Background()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, categoryRepo.Create(ctx, category))

	product := &models.Product{
		Title:         "Kettle",
		Description:   "Boils water",
		Price:         80,
		OriginalPrice: 100,
		CategoryID:    &category.ID,
		Brand:         "Acme",
		InStock:       true,
		StockCount:    3,
		Tags:          models.StringList{"sale", "popular"},
	}
	require.NoError(t, productRepo.Create(ctx, product))
	require.NoError(t, productRepo.AddImage(ctx, &models.ProductImage{ProductID: product.ID, Path: "product_images/x/kettle.jpg"}))

	w := doJSON(router, "GET", "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload, 1)

	got := payload[0]
	assert.Equal(t, product.ID, got["id"])
	assert.Equal(t, "Kettle", got["title"])
	assert.EqualValues(t, 20, got["discount"])
	assert.Equal(t, "Electronics", got["category"])
	assert.EqualValues(t, []interface{}{"sale", "popular"}, got["tags"])

	images := got["images"].([]interface{})
	require.Len(t, images, 1)
	assert.Equal(t, "/media/product_images/x/kettle.jpg", images[0].(map[string]interface{})["url"])
}

func TestListProductsEmpty(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, "GET", "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductDiscountZeroWhenPriceAboveOriginal(t *testing.T) {
	router, db := setupServer(t)

	product := &models.Product{Title: "Marked up", Price: 100, OriginalPrice: 80}
	require.NoError(t, repositories.NewProductRepository(db).Create(context.Background(), product))

	w := doJSON(router, "GET", "/product/"+product.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 0, got["discount"])
	assert.Nil(t, got["category"])
}

func TestGetProductUnknownID(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, "GET", "/product/9b3e4e9c-0000-0000-0000-000000000000", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"not found"}`, w.Body.String())
}

func TestCreateOrder(t *testing.T) {
	router, db := setupServer(t)
	ctx := context.Background()

	product := &models.Product{Title: "Lamp", Price: 50, OriginalPrice: 50}
	require.NoError(t, repositories.NewProductRepository(db).Create(ctx, product))

	body := `{"full_name":"Aziza Karimova","phone_number":"+998901234567","region":"Tashkent","products":["` + product.ID + `"]}`
	w := doJSON(router, "POST", "/order", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created["id"])

	order, err := repositories.NewOrderRepository(db).GetByID(ctx, created["id"])
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Len(t, order.Products, 1)

	// Order creation never touches stock.
	loaded, err := repositories.NewProductRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.StockCount)
}

func TestCreateOrderWithoutProducts(t *testing.T) {
	router, db := setupServer(t)

	w := doJSON(router, "POST", "/order", `{"full_name":"Botir Aliev","phone_number":"+998931112233","region":"Samarkand"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	order, err := repositories.NewOrderRepository(db).GetByID(context.Background(), created["id"])
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Empty(t, order.Products)
}

func TestCreateOrderMissingFields(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, "POST", "/order", `{"full_name":"","phone_number":"","region":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "full_name")
	assert.Contains(t, resp.Errors, "phone_number")
	assert.Contains(t, resp.Errors, "region")
}

func TestCreateOrderUnknownProductReference(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, "POST", "/order", `{"full_name":"A","phone_number":"1","region":"Tashkent","products":["ghost-product-id"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors["products"], "ghost-product-id")
}

func TestCreateOrderMalformedBody(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, "POST", "/order", `{"full_name": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
