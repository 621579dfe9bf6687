// internal/app/features/notes/edit.go
package notes

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeEdit renders the edit page with the note's current text.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	noteID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "noteID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := notestore.New(h.DB)
	n, err := store.GetByID(ctx, noteID)
	if err != nil {
		if err == notestore.ErrNotFound {
			http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading note", err, "A database error occurred.", notesTabURL(matterID))
		return
	}

	data := editData{
		BaseVM:   viewdata.NewBaseVM(r, "Edit Note", notesTabURL(matterID)),
		MatterID: matterID.Hex(),
		NoteID:   n.ID.Hex(),
		Text:     n.NoteText,
	}
	templates.Render(w, r, "note_edit", data)
}

// HandleEdit replaces the note's text in full. The store marks the note
// edited; that flag never clears, and the note keeps its place in the
// list.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	noteID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "noteID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", notesTabURL(matterID))
		return
	}

	text := r.FormValue("note_text")
	if strings.TrimSpace(text) == "" {
		templates.Render(w, r, "note_edit", editData{
			BaseVM:   viewdata.NewBaseVM(r, "Edit Note", notesTabURL(matterID)),
			MatterID: matterID.Hex(),
			NoteID:   noteID.Hex(),
			Text:     text,
			Error:    template.HTML("Note text cannot be empty."),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	if err := store.UpdateText(ctx, noteID, text); err != nil {
		if err == notestore.ErrNotFound {
			http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "database error updating note", err, "Failed to update note.", notesTabURL(matterID))
		return
	}

	h.Log.Info("note edited",
		zap.String("note_id", noteID.Hex()),
		zap.String("matter_id", matterID.Hex()))

	http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
}
