// internal/app/features/contacts/routes.go
package contacts

import "github.com/go-chi/chi/v5"

// Routes mounts the contact routes under /matters/{id}/contacts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIVE - card list socket for the contacts tab
	r.Get("/live", h.ServeLive)

	// CREATE / UPDATE - one form, keyed by a hidden editing id
	r.Get("/new", h.ServeNew)
	r.Get("/{contactID}/edit", h.ServeEdit)
	r.Post("/", h.HandleSave)

	// DELETE - confirmation page, then the confirmed POST
	r.Get("/{contactID}/delete", h.ServeDeleteConfirm)
	r.Post("/{contactID}/delete", h.HandleDelete)

	return r
}
