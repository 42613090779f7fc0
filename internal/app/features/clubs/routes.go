// internal/app/features/clubs/routes.go
package clubs

import "github.com/go-chi/chi/v5"

// Routes returns the public club-catalog subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	return r
}
