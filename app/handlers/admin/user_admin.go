package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Staff-account management. Routing gates this behind the superuser
// capability; staff cannot reach any of these handlers.

type userJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

type UserForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required,oneof=staff superuser"`
}

func (h *AdminHandler) decodeUserForm(r *http.Request) (*UserForm, error) {
	var form UserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return nil, errs.NewValidationError("body", "Invalid JSON body.")
	}
	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)}
	}
	return &form, nil
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AdminHandler.ListUsers: failed to load users: %v", err)
		helpers.RenderError(h.render, w, err)
		return
	}

	rows := make([]userJSON, 0, len(users))
	for i := range users {
		rows = append(rows, newUserJSON(&users[i]))
	}
	h.render.JSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	form, err := h.decodeUserForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	if form.Password == "" {
		helpers.RenderError(h.render, w, errs.NewValidationError("password", "This field is required."))
		return
	}

	user := &models.User{Email: form.Email, Password: form.Password, Role: form.Role}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, newUserJSON(user))
}

func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, newUserJSON(user))
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	form, err := h.decodeUserForm(r)
	if err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	user.Email = form.Email
	user.Role = form.Role
	if err := h.userRepo.Update(r.Context(), user); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}

	if form.Password != "" {
		if err := h.userRepo.UpdatePassword(r.Context(), user.ID, form.Password); err != nil {
			log.Printf("AdminHandler.UpdateUser: failed to update password for %s: %v", user.ID, err)
			helpers.RenderError(h.render, w, err)
			return
		}
	}

	h.render.JSON(w, http.StatusOK, newUserJSON(user))
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userRepo.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		helpers.RenderError(h.render, w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
