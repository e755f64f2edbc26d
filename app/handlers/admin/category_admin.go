package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type CategoryForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *AdminHandler) decodeCategoryForm(r *http.Request) (*CategoryForm, error) {
	var form CategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return nil, errs.NewValidationError("body", "Invalid JSON body.")
	}
	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)}
	}
	return &form, nil
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AdminHandler.ListCategories: failed to load categories: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	form, err := h.decodeCategoryForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	category := &models.Category{Name: form.Name}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	form, err := h.decodeCategoryForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	category.Name = form.Name
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryRepo.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
