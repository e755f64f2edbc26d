package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/davlatbek/go-catalog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo  repositories.UserRepositoryImpl
	sessions  sessions.SessionStore
	validator *validator.Validate
	render    *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, store sessions.SessionStore, v *validator.Validate, rnd *render.Render) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, sessions: store, validator: v, render: rnd}
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.RenderError(h.render, w, errs.NewValidationError("body", "Invalid JSON body."))
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RenderError(h.render, w, &errs.ValidationError{Fields: helpers.FormatValidationErrors(validationErrors)})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), payload.Email)
	if err != nil || !helpers.PasswordCompare(user.Password, []byte(payload.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid credentials"})
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Login: failed to save session for %s: %v", user.Email, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email, "role": user.Role})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.Logout: failed to clear session: %v", err)
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"detail": "logged out"})
}
