// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
// GET /not-found
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", "/cases"),
		Message: "The page you were looking for does not exist.",
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}
