// internal/app/features/joinclubs/routes.go
package joinclubs

import (
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes wires the club membership endpoints. Listing and leaving are
// scoped to the verified caller; joining is open but rate limited.
func Routes(h *Handler, verifier auth.Verifier, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(verifier))
		r.Get("/", h.List)
		r.Delete("/{clubID}", h.Leave)
	})

	r.With(limiter.Middleware).Post("/", h.Join)

	return r
}
