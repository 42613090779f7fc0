// internal/app/features/wings/routes.go
package wings

import "github.com/go-chi/chi/v5"

// Routes returns the public wings subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
