// internal/app/features/memberrequests/routes.go
package memberrequests

import (
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the request endpoints. Filing requires a verified
// identity; reviewing requires admin.
func Routes(h *Handler, verifier auth.Verifier, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAuth(verifier))
	r.Post("/", h.Create)
	r.With(requireAdmin).Get("/", h.List)
	return r
}
