package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/handlers"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// productPreview is one tagged thumbnail in an order's product preview:
// the first image of a linked product plus its title.
type productPreview struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type adminOrderRow struct {
	ID              string           `json:"id"`
	FullName        string           `json:"full_name"`
	PhoneNumber     string           `json:"phone_number"`
	Region          string           `json:"region"`
	CreatedAt       time.Time        `json:"created_at"`
	Status          string           `json:"status"`
	ProductsPreview []productPreview `json:"products_preview"`
}

type adminOrderDetail struct {
	adminOrderRow
	InternalNote string                 `json:"internal_note"`
	Products     []handlers.ProductJSON `json:"products"`
}

func (h *AdminHandler) newOrderRow(o *models.Order) adminOrderRow {
	preview := []productPreview{}
	for i := range o.Products {
		if first := o.Products[i].FirstImage(); first != nil {
			preview = append(preview, productPreview{
				URL:   handlers.ImageURL(h.mediaURL, first.Path),
				Title: o.Products[i].Title,
			})
		}
	}
	return adminOrderRow{
		ID:              o.ID,
		FullName:        o.FullName,
		PhoneNumber:     o.PhoneNumber,
		Region:          o.Region,
		CreatedAt:       o.CreatedAt,
		Status:          o.Status,
		ProductsPreview: preview,
	}
}

func (h *AdminHandler) newOrderDetail(o *models.Order) adminOrderDetail {
	products := make([]handlers.ProductJSON, 0, len(o.Products))
	for i := range o.Products {
		products = append(products, handlers.NewProductJSON(&o.Products[i], h.mediaURL))
	}
	return adminOrderDetail{
		adminOrderRow: h.newOrderRow(o),
		InternalNote:  o.InternalNote,
		Products:      products,
	}
}

// parseOrderFilter reads the listing filters from the query string. Date
// bounds accept either a bare date or RFC 3339.
func parseOrderFilter(r *http.Request) (repositories.OrderFilter, error) {
	filter := repositories.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Region: r.URL.Query().Get("region"),
	}

	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return filter, errs.NewValidationError("status", "Unknown order status.")
	}

	if from := r.URL.Query().Get("created_from"); from != "" {
		t, err := parseTimestamp(from)
		if err != nil {
			return filter, errs.NewValidationError("created_from", "Enter a valid date.")
		}
		filter.CreatedFrom = &t
	}
	if to := r.URL.Query().Get("created_to"); to != "" {
		t, err := parseTimestamp(to)
		if err != nil {
			return filter, errs.NewValidationError("created_to", "Enter a valid date.")
		}
		filter.CreatedTo = &t
	}

	return filter, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := parseOrderFilter(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	orders, err := h.orderRepo.List(r.Context(), filter)
	if err != nil {
		log.Printf("AdminHandler.ListOrders: failed to load orders: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}

	rows := make([]adminOrderRow, 0, len(orders))
	for i := range orders {
		rows = append(rows, h.newOrderRow(&orders[i]))
	}
	h.render.JSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, h.newOrderDetail(order))
}

type OrderForm struct {
	FullName     string   `json:"full_name" validate:"required"`
	PhoneNumber  string   `json:"phone_number" validate:"required"`
	Region       string   `json:"region" validate:"required"`
	Products     []string `json:"products"`
	Status       string   `json:"status" validate:"required,oneof=new processing shipped delivered cancelled"`
	InternalNote string   `json:"internal_note"`
}

// UpdateOrder is the full-record edit. The creation timestamp is not part of
// the form and cannot be changed.
func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var form OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("body", "Invalid JSON body."))
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RenderError(h.render, w, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)})
		return
	}

	order, err := h.orderRepo.Update(r.Context(), mux.Vars(r)["id"], repositories.OrderUpdate{
		FullName:     form.FullName,
		PhoneNumber:  form.PhoneNumber,
		Region:       form.Region,
		Status:       form.Status,
		InternalNote: form.InternalNote,
		ProductIDs:   form.Products,
	})
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, h.newOrderDetail(order))
}

type orderStatusPatch struct {
	Status string `json:"status" validate:"required,oneof=new processing shipped delivered cancelled"`
}

// PatchOrderStatus is the single-field update behind the listing view's
// inline status editor.
func (h *AdminHandler) PatchOrderStatus(w http.ResponseWriter, r *http.Request) {
	var patch orderStatusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("body", "Invalid JSON body."))
		return
	}

	if err := h.validator.Struct(&patch); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RenderError(h.render, w, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)})
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.orderRepo.UpdateStatus(r.Context(), id, patch.Status); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"id": id, "status": patch.Status})
}
