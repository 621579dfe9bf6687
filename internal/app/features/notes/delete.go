// internal/app/features/notes/delete.go
package notes

import (
	"context"
	"net/http"

	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// previewLen bounds the note excerpt on the confirmation page.
const previewLen = 120

// ServeDeleteConfirm renders the delete confirmation page. The GET
// never touches the store's delete path; only the confirmed POST does.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
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

	preview := n.NoteText
	if runes := []rune(preview); len(runes) > previewLen {
		preview = string(runes[:previewLen]) + "..."
	}

	data := deleteConfirmData{
		BaseVM:   viewdata.NewBaseVM(r, "Delete Note", notesTabURL(matterID)),
		MatterID: matterID.Hex(),
		NoteID:   n.ID.Hex(),
		Preview:  preview,
	}
	templates.Render(w, r, "note_delete", data)
}

// HandleDelete removes the note after confirmation. Deleting an
// already-gone note is not an error; the list reconciles either way.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	noteID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "noteID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	deleted, err := store.Delete(ctx, noteID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting note", err, "Failed to delete note.", notesTabURL(matterID))
		return
	}
	if deleted > 0 {
		h.Log.Info("note deleted",
			zap.String("note_id", noteID.Hex()),
			zap.String("matter_id", matterID.Hex()))
	}

	http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
}
