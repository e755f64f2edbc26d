package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/davlatbek/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var sampleTags = []string{"sale", "popular", "limited", "eco", "premium", "budget"}

var sampleFeatures = []string{
	"Free delivery",
	"1 year warranty",
	"Water resistant",
	"Energy efficient",
	"Handmade",
}

func pickSome(pool []string, max int) models.StringList {
	n := rand.Intn(max) + 1
	picked := make(models.StringList, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		v := pool[rand.Intn(len(pool))]
		if seen[v] {
			continue
		}
		seen[v] = true
		picked = append(picked, v)
	}
	return picked
}

func ProductFaker(category *models.Category) *models.Product {
	title := faker.Name()
	productID := uuid.New().String()

	price := (rand.Intn(200) + 1) * 1000
	originalPrice := price
	if rand.Intn(2) == 0 {
		originalPrice = price + (rand.Intn(50)+1)*1000
	}

	numImages := rand.Intn(3)
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Path:      fmt.Sprintf("product_images/%s/%s-%d.jpg", productID, slug.Make(title), i),
			Position:  i,
			CreatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:            productID,
		Title:         title,
		Description:   faker.Paragraph(),
		Price:         price,
		OriginalPrice: originalPrice,
		CategoryID:    &category.ID,
		Brand:         faker.LastName(),
		Rating:        float64(rand.Intn(50)) / 10,
		InStock:       rand.Intn(5) != 0,
		StockCount:    rand.Intn(100),
		Tags:          pickSome(sampleTags, 3),
		Features:      pickSome(sampleFeatures, 3),
		ReturnPolicy:  "14 days",
		Warranty:      "12 months",
		Images:        images,
	}
}
