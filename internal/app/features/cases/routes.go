// internal/app/features/cases/routes.go
package cases

import "github.com/go-chi/chi/v5"

// Routes mounts the dashboard and intake routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST - dashboard with filters, plus the live socket
	r.Get("/", h.ServeList)
	r.Get("/live", h.ServeLive)

	// CREATE - intake form and handler
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	return r
}
