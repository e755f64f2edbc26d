package middlewares

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
)

// UserFromContext returns the authenticated staff user, or nil for anonymous
// requests.
func UserFromContext(r *http.Request) *models.User {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func writeJSON(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func requireCapability(check func(*models.User) bool, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r)
			if user == nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "authentication required"})
				return
			}
			if !check(user) {
				log.Printf("admin: user %s (%s) denied %s on %s", user.ID, user.Role, name, r.URL.Path)
				writeJSON(w, http.StatusForbidden, map[string]string{"detail": "permission denied"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff gates the catalog and order management screens.
func RequireStaff() func(http.Handler) http.Handler {
	return requireCapability(helpers.CanManageCatalog, "catalog management")
}

// RequireSuperuser gates user-account management.
func RequireSuperuser() func(http.Handler) http.Handler {
	return requireCapability(helpers.CanManageUsers, "user management")
}
