package admin

import (
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/handlers"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/gorilla/mux"
)

const maxImageUploadBytes = 10 << 20

// UploadProductImage attaches an uploaded file to a product. The new image
// goes to the end of the product's image sequence; the first image stays the
// thumbnail.
func (h *AdminHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("image", "Malformed upload."))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("image", "This field is required."))
		return
	}
	defer file.Close()

	path, err := h.storage.SaveProductImage(product.ID, header.Filename, file)
	if err != nil {
		log.Printf("AdminHandler.UploadProductImage: failed to store file for product %s: %v", product.ID, err)
		helpers.RenderError(h.render, w, err)
		return
	}

	image := &models.ProductImage{ProductID: product.ID, Path: path}
	if err := h.productRepo.AddImage(r.Context(), image); err != nil {
		log.Printf("AdminHandler.UploadProductImage: failed to persist image for product %s: %v", product.ID, err)
		if removeErr := h.storage.Remove(path); removeErr != nil {
			log.Printf("AdminHandler.UploadProductImage: failed to clean up file %s: %v", path, removeErr)
		}
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":       image.ID,
		"url":      handlers.ImageURL(h.mediaURL, image.Path),
		"position": image.Position,
	})
}

func (h *AdminHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	image, err := h.productRepo.GetImage(r.Context(), id)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	if err := h.productRepo.RemoveImage(r.Context(), id); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	if err := h.storage.Remove(image.Path); err != nil {
		log.Printf("AdminHandler.DeleteProductImage: failed to remove file %s: %v", image.Path, err)
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
