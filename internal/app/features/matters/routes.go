// internal/app/features/matters/routes.go
package matters

import (
	"github.com/dalemusser/matterhub/internal/app/features/contacts"
	"github.com/dalemusser/matterhub/internal/app/features/notes"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the matter detail routes and the per-matter contact and
// note routes beneath them.
func Routes(h *Handler, ch *contacts.Handler, nh *notes.Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/{id}", func(r chi.Router) {
		// DETAIL - tabbed page, ?tab= selects the active tab
		r.Get("/", h.ServeDetail)

		// EDIT - info tab fields
		r.Get("/edit", h.ServeEditInfo)
		r.Post("/edit", h.HandleEditInfo)

		r.Mount("/contacts", contacts.Routes(ch))
		r.Mount("/notes", notes.Routes(nh))
	})

	return r
}
