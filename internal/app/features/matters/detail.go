// internal/app/features/matters/detail.go
package matters

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/matterhub/internal/app/features/contacts"
	"github.com/dalemusser/matterhub/internal/app/features/notes"
	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeDetail renders the matter detail page with the requested tab
// active (?tab=, default info). A matter that cannot be loaded sends
// the user back to the dashboard rather than a broken page.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := matterstore.New(h.DB)
	m, err := store.GetByID(ctx, matterID)
	if err != nil {
		if err != matterstore.ErrNotFound {
			h.Log.Error("database error loading matter", zap.Error(err), zap.String("matter_id", matterID.Hex()))
		}
		http.Redirect(w, r, "/cases", http.StatusSeeOther)
		return
	}

	tab := query.Get(r, "tab")
	if !validTab(tab) {
		tab = "info"
	}

	data := detailData{
		BaseVM:     viewdata.NewBaseVM(r, m.MatterName, "/cases"),
		MatterID:   m.ID.Hex(),
		MatterName: m.MatterName,
		MatterType: m.MatterType,
		ActiveTab:  tab,
		Tabs:       tabs,
		Info: infoVM{
			MatterName: m.MatterName,
			MatterType: orNA(m.MatterType),
			Status:     m.Status,
			RateType:   orNA(m.RateType),
		},
	}

	if m.RateType != "" {
		data.RateTypeLabel = m.RateType
	} else {
		data.RateTypeLabel = "Not Set"
	}
	if m.RateAmount != nil {
		data.HasRateAmount = true
		data.RateAmount = strconv.FormatFloat(*m.RateAmount, 'f', -1, 64)
	}

	switch tab {
	case "contacts":
		data.Contacts, err = contacts.BuildTab(ctx, h.DB, matterID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error listing contacts", err, "A database error occurred.", "/cases")
			return
		}
	case "notes":
		data.Notes, err = notes.BuildTab(ctx, h.DB, matterID, data.CSRFToken)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error listing notes", err, "A database error occurred.", "/cases")
			return
		}
	}

	templates.Render(w, r, "matter_detail", data)
}

func validTab(tab string) bool {
	for _, t := range tabs {
		if t.ID == tab {
			return true
		}
	}
	return false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
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
