package admin

import (
	"net/http"

	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/middlewares"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/davlatbek/go-catalog/app/utils/storage"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	userRepo     repositories.UserRepositoryImpl
	storage      *storage.Disk
	mediaURL     string
}

func NewAdminHandler(
	rnd *render.Render,
	v *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	disk *storage.Disk,
	mediaURL string,
) *AdminHandler {
	return &AdminHandler{
		render:       rnd,
		validator:    v,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		storage:      disk,
		mediaURL:     mediaURL,
	}
}

// Index lists the admin sections the current user may open. Sections the
// user cannot manage are absent from the listing, not merely disabled.
func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r)

	sections := []string{}
	if helpers.CanManageCatalog(user) {
		sections = append(sections, "categories", "products", "orders")
	}
	if helpers.CanManageUsers(user) {
		sections = append(sections, "users")
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"sections": sections})
}
