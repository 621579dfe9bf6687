// internal/app/features/matters/edit.go
package matters

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/system/inputval"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// editMatterInput defines validation rules for the info edit form.
type editMatterInput struct {
	MatterName string `validate:"required,max=200" label:"Matter name"`
}

// ServeEditInfo renders the info edit form prefilled from the matter.
func (h *Handler) ServeEditInfo(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := matterstore.New(h.DB)
	m, err := store.GetByID(ctx, matterID)
	if err != nil {
		http.Redirect(w, r, "/cases", http.StatusSeeOther)
		return
	}

	form := editForm{
		MatterName: m.MatterName,
		Status:     m.Status,
		MatterType: m.MatterType,
		RateType:   m.RateType,
	}
	if m.RateAmount != nil {
		form.RateAmount = strconv.FormatFloat(*m.RateAmount, 'f', -1, 64)
	}

	data := editData{
		BaseVM:      viewdata.NewBaseVM(r, "Edit Matter", "/matters/"+matterID.Hex()),
		MatterID:    matterID.Hex(),
		Form:        form,
		MatterTypes: models.MatterTypeSuggestions,
	}
	templates.Render(w, r, "matter_edit", data)
}

// HandleEditInfo patches the matter's info fields. An empty rate amount
// clears the stored value.
func (h *Handler) HandleEditInfo(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/matters/"+matterID.Hex())
		return
	}

	form := editForm{
		MatterName: strings.TrimSpace(r.FormValue("matter_name")),
		Status:     r.FormValue("status"),
		MatterType: strings.TrimSpace(r.FormValue("matter_type")),
		RateType:   r.FormValue("matter_rate_type"),
		RateAmount: r.FormValue("matter_rate_amount"),
	}

	reRender := func(msg string) {
		templates.Render(w, r, "matter_edit", editData{
			BaseVM:      viewdata.NewBaseVM(r, "Edit Matter", "/matters/"+matterID.Hex()),
			MatterID:    matterID.Hex(),
			Form:        form,
			MatterTypes: models.MatterTypeSuggestions,
			Error:       template.HTML(msg),
		})
	}

	if result := inputval.Validate(editMatterInput{MatterName: form.MatterName}); result.HasErrors() {
		reRender(result.First())
		return
	}
	if !models.IsValidStatus(form.Status) {
		reRender("Status must be open or close.")
		return
	}
	if !models.IsValidRateType(form.RateType) {
		reRender("Rate type must be flat rate, contingency, or custom.")
		return
	}
	rateAmount, err := inputval.ParseOptionalMoney(form.RateAmount, "Rate amount")
	if err != nil {
		reRender(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := matterstore.New(h.DB)
	err = store.UpdateInfo(ctx, matterID, models.Matter{
		MatterName: form.MatterName,
		Status:     form.Status,
		MatterType: form.MatterType,
		RateType:   form.RateType,
		RateAmount: rateAmount,
	})
	if err != nil {
		if err == matterstore.ErrNotFound {
			http.Redirect(w, r, "/cases", http.StatusSeeOther)
			return
		}
		h.Log.Error("database error updating matter", zap.Error(err))
		reRender("Failed to save matter. A database error occurred.")
		return
	}

	h.Log.Info("matter info updated", zap.String("matter_id", matterID.Hex()))

	http.Redirect(w, r, "/matters/"+matterID.Hex(), http.StatusSeeOther)
}
