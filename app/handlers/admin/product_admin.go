package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/handlers"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/utils/format"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type ProductForm struct {
	Title         string            `validate:"required,max=255"`
	Description   string            ``
	Price         int               `validate:"gte=0"`
	OriginalPrice int               `validate:"gte=0"`
	CategoryID    *string           ``
	Brand         string            `validate:"max=100"`
	Rating        float64           `validate:"gte=0"`
	InStock       bool              ``
	StockCount    int               `validate:"gte=0"`
	Tags          models.StringList ``
	Features      models.StringList ``
	ReturnPolicy  string            `validate:"max=255"`
	Warranty      string            `validate:"max=255"`
}

// productFormWire is the JSON shape of a product edit. Tags and features
// arrive as raw JSON so a malformed list can be attributed to its field.
type productFormWire struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         int             `json:"price"`
	OriginalPrice int             `json:"original_price"`
	CategoryID    *string         `json:"category_id"`
	Brand         string          `json:"brand"`
	Rating        float64         `json:"rating"`
	InStock       bool            `json:"in_stock"`
	StockCount    int             `json:"stock_count"`
	Tags          json.RawMessage `json:"tags"`
	Features      json.RawMessage `json:"features"`
	ReturnPolicy  string          `json:"return_policy"`
	Warranty      string          `json:"warranty"`
}

// decodeProductForm accepts either a JSON body or submitted form values. The
// form path is the repeater-widget shape: tags and features arrive as
// repeated inputs, blanks dropped, order preserved.
func (h *AdminHandler) decodeProductForm(r *http.Request) (*ProductForm, error) {
	var form ProductForm

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") || strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return nil, errs.NewValidationError("body", "Malformed form submission.")
		}

		fieldErrs := map[string]string{}
		form.Title = r.PostFormValue("title")
		form.Description = r.PostFormValue("description")
		form.Brand = r.PostFormValue("brand")
		form.ReturnPolicy = r.PostFormValue("return_policy")
		form.Warranty = r.PostFormValue("warranty")
		form.Price = parseFormInt(r.PostFormValue("price"), "price", fieldErrs)
		form.OriginalPrice = parseFormInt(r.PostFormValue("original_price"), "original_price", fieldErrs)
		form.StockCount = parseFormInt(r.PostFormValue("stock_count"), "stock_count", fieldErrs)
		form.Rating = parseFormFloat(r.PostFormValue("rating"), "rating", fieldErrs)
		form.InStock = parseFormBool(r.PostFormValue("in_stock"))
		if categoryID := r.PostFormValue("category_id"); categoryID != "" {
			form.CategoryID = &categoryID
		}
		form.Tags = models.ParseStringList(r.PostForm["tags"])
		form.Features = models.ParseStringList(r.PostForm["features"])

		if len(fieldErrs) > 0 {
			return nil, &errs.ValidationError{Fields: fieldErrs}
		}
	} else {
		var wire productFormWire
		if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
			return nil, errs.NewValidationError("body", "Invalid JSON body.")
		}

		tags, err := models.StringListFromJSON(wire.Tags)
		if err != nil {
			return nil, errs.NewValidationError("tags", errs.ErrInvalidList.Error())
		}
		features, err := models.StringListFromJSON(wire.Features)
		if err != nil {
			return nil, errs.NewValidationError("features", errs.ErrInvalidList.Error())
		}

		form = ProductForm{
			Title:         wire.Title,
			Description:   wire.Description,
			Price:         wire.Price,
			OriginalPrice: wire.OriginalPrice,
			CategoryID:    wire.CategoryID,
			Brand:         wire.Brand,
			Rating:        wire.Rating,
			InStock:       wire.InStock,
			StockCount:    wire.StockCount,
			Tags:          tags,
			Features:      features,
			ReturnPolicy:  wire.ReturnPolicy,
			Warranty:      wire.Warranty,
		}
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)}
	}

	if form.CategoryID != nil {
		if _, err := h.categoryRepo.GetByID(r.Context(), *form.CategoryID); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, errs.NewValidationError("category_id", "invalid category reference: "+*form.CategoryID)
			}
			return nil, err
		}
	}

	return &form, nil
}

func parseFormInt(value, field string, fieldErrs map[string]string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fieldErrs[field] = "Must be a whole number."
		return 0
	}
	return n
}

func parseFormFloat(value, field string, fieldErrs map[string]string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fieldErrs[field] = "Must be a number."
		return 0
	}
	return f
}

func parseFormBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

func (f *ProductForm) apply(product *models.Product) {
	product.Title = f.Title
	product.Description = f.Description
	product.Price = f.Price
	product.OriginalPrice = f.OriginalPrice
	product.CategoryID = f.CategoryID
	product.Brand = f.Brand
	product.Rating = f.Rating
	product.InStock = f.InStock
	product.StockCount = f.StockCount
	product.Tags = f.Tags
	product.Features = f.Features
	product.ReturnPolicy = f.ReturnPolicy
	product.Warranty = f.Warranty
}

// adminProductRow is one line of the product listing, carrying the derived
// display fields the list screen shows.
type adminProductRow struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display"`
	StockCount   int    `json:"stock_count"`
	InStock      bool   `json:"in_stock"`
	Thumbnail    string `json:"thumbnail"`
}

func (h *AdminHandler) newProductRow(p *models.Product) adminProductRow {
	thumbnail := "-"
	if first := p.FirstImage(); first != nil {
		thumbnail = handlers.ImageURL(h.mediaURL, first.Path)
	}
	return adminProductRow{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		PriceDisplay: format.Price(p.Price),
		StockCount:   p.StockCount,
		InStock:      p.InStock,
		Thumbnail:    thumbnail,
	}
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("AdminHandler.ListProducts: failed to load products: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}

	rows := make([]adminProductRow, 0, len(products))
	for i := range products {
		rows = append(rows, h.newProductRow(&products[i]))
	}
	h.render.JSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := h.decodeProductForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	product := &models.Product{}
	form.apply(product)

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("AdminHandler.CreateProduct: failed to create product: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}

	created, err := h.productRepo.GetByID(r.Context(), product.ID)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, handlers.NewProductJSON(created, h.mediaURL))
}

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, handlers.NewProductJSON(product, h.mediaURL))
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	form, err := h.decodeProductForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	form.apply(product)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("AdminHandler.UpdateProduct: failed to update product %s: %v", product.ID, err)
		helpers.RenderError(h.render, w, err)
		return
	}

	updated, err := h.productRepo.GetByID(r.Context(), product.ID)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, handlers.NewProductJSON(updated, h.mediaURL))
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	for _, img := range product.Images {
		if err := h.storage.Remove(img.Path); err != nil {
			log.Printf("AdminHandler.DeleteProduct: failed to remove image file %s: %v", img.Path, err)
		}
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
