package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/unrolled/render"
)

// RenderError maps a domain error onto its HTTP shape. Unrecognized errors
// become opaque 500s; their detail stays in the server log.
func RenderError(rnd *render.Render, w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationError
	var constraintErr *errs.ConstraintViolation

	switch {
	case errors.As(err, &validationErr):
		rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{"errors": validationErr.Fields})
	case errors.As(err, &constraintErr):
		rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{constraintErr.Field: constraintErr.Detail},
		})
	case errors.Is(err, errs.ErrNotFound):
		rnd.JSON(w, http.StatusNotFound, map[string]string{"detail": "not found"})
	case errors.Is(err, errs.ErrPermissionDenied):
		rnd.JSON(w, http.StatusForbidden, map[string]string{"detail": "permission denied"})
	case errors.Is(err, errs.ErrInvalidList):
		rnd.JSON(w, http.StatusBadRequest, map[string]string{"detail": errs.ErrInvalidList.Error()})
	default:
		log.Printf("RenderError: unhandled error: %v", err)
		rnd.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
	}
}
