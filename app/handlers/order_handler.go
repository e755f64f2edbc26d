package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderRepo repositories.OrderRepositoryImpl
	validator *validator.Validate
	render    *render.Render
}

func NewOrderHandler(orderRepo repositories.OrderRepositoryImpl, v *validator.Validate, rnd *render.Render) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo, validator: v, render: rnd}
}

type orderPayload struct {
	FullName    string   `json:"full_name" validate:"required"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Region      string   `json:"region" validate:"required"`
	Products    []string `json:"products"`
}

// CreateOrder is the customer-facing order intake. Orders start in the "new"
// status; stock is deliberately untouched.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("body", "Invalid JSON body."))
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RenderError(h.render, w, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)})
		return
	}

	order := &models.Order{
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		Region:      payload.Region,
		Status:      models.OrderStatusNew,
	}

	if err := h.orderRepo.Create(r.Context(), order, payload.Products); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]string{"id": order.ID})
}
