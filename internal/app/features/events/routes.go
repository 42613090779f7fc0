// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes returns the public event-catalog subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	return r
}
