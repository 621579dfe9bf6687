// internal/app/features/notes/add.go
package notes

import (
	"context"
	"net/http"
	"strings"

	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleAdd creates a note from the tab's add form. Whitespace-only
// text creates nothing; either way the submit lands back on the tab and
// the list catches up through the change feed.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", notesTabURL(matterID))
		return
	}

	text := r.FormValue("note_text")
	if strings.TrimSpace(text) == "" {
		http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	created, err := store.Create(ctx, models.Note{
		MatterID: matterID,
		NoteText: text,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating note", err, "Failed to add note.", notesTabURL(matterID))
		return
	}

	h.Log.Info("note created",
		zap.String("note_id", created.ID.Hex()),
		zap.String("matter_id", matterID.Hex()))

	http.Redirect(w, r, notesTabURL(matterID), http.StatusSeeOther)
}

// matterParam resolves the {id} route parameter; a malformed id is a
// plain 404.
func matterParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	matterID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return primitive.NilObjectID, false
	}
	return matterID, true
}

func notesTabURL(matterID primitive.ObjectID) string {
	return "/matters/" + matterID.Hex() + "?tab=notes"
}
