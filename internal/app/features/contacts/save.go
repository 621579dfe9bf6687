// internal/app/features/contacts/save.go
package contacts

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	"github.com/dalemusser/matterhub/internal/app/system/inputval"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// contactInput defines validation rules for the contact form.
type contactInput struct {
	Name string `validate:"required,max=200" label:"Name"`
}

// ServeNew renders an empty add-contact form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}
	data := formData{
		BaseVM:   viewdata.NewBaseVM(r, "Add Contact", contactsTabURL(matterID)),
		MatterID: matterID.Hex(),
	}
	templates.Render(w, r, "contact_form", data)
}

// ServeEdit renders the form prefilled with an existing contact. The
// same form posts back with the contact id in a hidden field.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	data := formData{
		BaseVM:    viewdata.NewBaseVM(r, "Edit Contact", contactsTabURL(matterID)),
		MatterID:  matterID.Hex(),
		EditingID: c.ID.Hex(),
		Form: contactForm{
			Name:           c.Name,
			RelationToCase: c.RelationToCase,
			Email:          c.Email,
			Phone:          c.Phone,
			Address:        c.Address,
			Description:    c.Description,
			IsPlaintiff:    c.IsPlaintiff,
			IsDefendant:    c.IsDefendant,
		},
	}
	templates.Render(w, r, "contact_form", data)
}

// HandleSave processes the contact form. A hidden editing_id routes the
// submit to update-by-id; otherwise it creates under the matter. Either
// way the list itself catches up through the change feed.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", contactsTabURL(matterID))
		return
	}

	editingID := r.FormValue("editing_id")
	form := contactForm{
		Name:           strings.TrimSpace(r.FormValue("name")),
		RelationToCase: strings.TrimSpace(r.FormValue("relation_to_case")),
		Email:          strings.TrimSpace(r.FormValue("email")),
		Phone:          strings.TrimSpace(r.FormValue("phone")),
		Address:        strings.TrimSpace(r.FormValue("address")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		IsPlaintiff:    r.FormValue("is_plaintiff") != "",
		IsDefendant:    r.FormValue("is_defendant") != "",
	}

	title := "Add Contact"
	if editingID != "" {
		title = "Edit Contact"
	}
	reRender := func(msg string) {
		templates.Render(w, r, "contact_form", formData{
			BaseVM:    viewdata.NewBaseVM(r, title, contactsTabURL(matterID)),
			MatterID:  matterID.Hex(),
			EditingID: editingID,
			Form:      form,
			Error:     template.HTML(msg),
		})
	}

	if result := inputval.Validate(contactInput{Name: form.Name}); result.HasErrors() {
		reRender(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := contactstore.New(h.DB)
	contact := models.Contact{
		MatterID:       matterID,
		Name:           form.Name,
		RelationToCase: form.RelationToCase,
		Email:          form.Email,
		Phone:          form.Phone,
		Address:        form.Address,
		Description:    form.Description,
		IsPlaintiff:    form.IsPlaintiff,
		IsDefendant:    form.IsDefendant,
	}

	if editingID != "" {
		contactID, err := primitive.ObjectIDFromHex(editingID)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := store.Update(ctx, contactID, contact); err != nil {
			if err == contactstore.ErrNotFound {
				http.Redirect(w, r, contactsTabURL(matterID), http.StatusSeeOther)
				return
			}
			h.Log.Error("database error updating contact", zap.Error(err))
			reRender("Failed to save contact. A database error occurred.")
			return
		}
		h.Log.Info("contact updated",
			zap.String("contact_id", editingID),
			zap.String("matter_id", matterID.Hex()))
	} else {
		created, err := store.Create(ctx, contact)
		if err != nil {
			h.Log.Error("database error creating contact", zap.Error(err))
			reRender("Failed to save contact. A database error occurred.")
			return
		}
		h.Log.Info("contact created",
			zap.String("contact_id", created.ID.Hex()),
			zap.String("matter_id", matterID.Hex()))
	}

	http.Redirect(w, r, contactsTabURL(matterID), http.StatusSeeOther)
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

func contactsTabURL(matterID primitive.ObjectID) string {
	return "/matters/" + matterID.Hex() + "?tab=contacts"
}
