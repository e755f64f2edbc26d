package handlers

import (
	"strings"

	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/utils/calc"
)

// JSON shapes of the public read API. Discount and image URLs are derived at
// serialization time and never persisted.

type ProductImageJSON struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductJSON struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Images        []ProductImageJSON `json:"images"`
	Price         int                `json:"price"`
	OriginalPrice int                `json:"original_price"`
	Category      *string            `json:"category"`
	Brand         string             `json:"brand"`
	Rating        float64            `json:"rating"`
	InStock       bool               `json:"in_stock"`
	StockCount    int                `json:"stock_count"`
	Tags          models.StringList  `json:"tags"`
	Discount      int                `json:"discount"`
	Features      models.StringList  `json:"features"`
	ReturnPolicy  string             `json:"return_policy"`
	Warranty      string             `json:"warranty"`
}

func ImageURL(mediaURL, path string) string {
	return strings.TrimSuffix(mediaURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func NewProductJSON(p *models.Product, mediaURL string) ProductJSON {
	images := make([]ProductImageJSON, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageJSON{ID: img.ID, URL: ImageURL(mediaURL, img.Path)})
	}

	var category *string
	if p.Category != nil {
		name := p.Category.Name
		category = &name
	}

	tags := p.Tags
	if tags == nil {
		tags = models.StringList{}
	}
	features := p.Features
	if features == nil {
		features = models.StringList{}
	}

	return ProductJSON{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Images:        images,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      category,
		Brand:         p.Brand,
		Rating:        p.Rating,
		InStock:       p.InStock,
		StockCount:    p.StockCount,
		Tags:          tags,
		Discount:      calc.DiscountPercent(p.Price, p.OriginalPrice),
		Features:      features,
		ReturnPolicy:  p.ReturnPolicy,
		Warranty:      p.Warranty,
	}
}
