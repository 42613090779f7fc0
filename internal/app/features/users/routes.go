// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the user endpoints. The login upsert happens before the
// client has a profile, so it stays open; everything else requires a
// verified identity, and the directory and role changes require admin.
func Routes(h *Handler, verifier auth.Verifier, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Put("/", h.Upsert)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(verifier))
		r.Get("/role", h.Role)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", h.List)
			r.Patch("/{email}/role", h.UpdateRole)
		})
	})

	return r
}
