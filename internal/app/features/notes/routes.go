// internal/app/features/notes/routes.go
package notes

import "github.com/go-chi/chi/v5"

// Routes mounts the note routes under /matters/{id}/notes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIVE - note list socket for the notes tab
	r.Get("/live", h.ServeLive)

	// CREATE - add form lives on the tab itself
	r.Post("/", h.HandleAdd)

	// UPDATE - full-text replace, marks the note edited
	r.Get("/{noteID}/edit", h.ServeEdit)
	r.Post("/{noteID}/edit", h.HandleEdit)

	// DELETE - confirmation page, then the confirmed POST
	r.Get("/{noteID}/delete", h.ServeDeleteConfirm)
	r.Post("/{noteID}/delete", h.HandleDelete)

	return r
}
