// internal/app/features/payments/routes.go
package payments

import (
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the payment endpoints. Everything here requires a
// verified identity.
func Routes(h *Handler, verifier auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAuth(verifier))
	r.Get("/", h.List)
	r.Post("/checkout", h.CreateSession)
	r.Post("/confirm", h.Confirm)
	return r
}
