// internal/app/features/joinevents/routes.go
package joinevents

import (
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the event registration endpoints. Both require a
// verified identity.
func Routes(h *Handler, verifier auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAuth(verifier))
	r.Get("/", h.List)
	r.Post("/{id}", h.Register)
	return r
}
