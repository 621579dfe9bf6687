// internal/app/features/contacts/delete.go
package contacts

import (
	"context"
	"net/http"

	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeDeleteConfirm renders the delete confirmation page. The GET
// never touches the store's delete path; only the confirmed POST does.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	contactID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "contactID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := contactstore.New(h.DB)
	c, err := store.GetByID(ctx, contactID)
	if err != nil {
		if err == contactstore.ErrNotFound {
			http.Redirect(w, r, contactsTabURL(matterID), http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "database error loading contact", err, "A database error occurred.", contactsTabURL(matterID))
		return
	}

	data := deleteConfirmData{
		BaseVM:    viewdata.NewBaseVM(r, "Delete Contact", contactsTabURL(matterID)),
		MatterID:  matterID.Hex(),
		ContactID: c.ID.Hex(),
		Name:      c.Name,
	}
	templates.Render(w, r, "contact_delete", data)
}

// HandleDelete removes the contact after confirmation. Deleting an
// already-gone contact is not an error; the list reconciles either way.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	contactID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "contactID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := contactstore.New(h.DB)
	deleted, err := store.Delete(ctx, contactID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting contact", err, "Failed to delete contact.", contactsTabURL(matterID))
		return
	}
	if deleted > 0 {
		h.Log.Info("contact deleted",
			zap.String("contact_id", contactID.Hex()),
			zap.String("matter_id", matterID.Hex()))
	}

	http.Redirect(w, r, contactsTabURL(matterID), http.StatusSeeOther)
}
