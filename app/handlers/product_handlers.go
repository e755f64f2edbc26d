package handlers

import (
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo     repositories.ProductRepositoryImpl
	render   *render.Render
	mediaURL string
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, rnd *render.Render, mediaURL string) *ProductHandler {
	return &ProductHandler{repo: repo, render: rnd, mediaURL: mediaURL}
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetProducts(r.Context())
	if err != nil {
		log.Printf("ProductHandler.Products: failed to load products: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}

	payload := make([]ProductJSON, 0, len(products))
	for i := range products {
		payload = append(payload, NewProductJSON(&products[i], h.mediaURL))
	}

	h.render.JSON(w, http.StatusOK, payload)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, NewProductJSON(product, h.mediaURL))
}
