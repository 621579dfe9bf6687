// internal/app/features/cases/new.go
package cases

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/system/inputval"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// createMatterInput defines validation rules for the intake form.
type createMatterInput struct {
	MatterName string `validate:"required,max=200" label:"Matter name"`
}

// ServeNew renders the new case intake form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{
		BaseVM: viewdata.NewBaseVM(r, "New Case Intake", "/cases"),
		Form: caseForm{
			Status:   models.StatusOpen,
			RateType: models.RateFlat,
			OpenDate: time.Now().Format("2006-01-02"),
		},
		MatterTypes: models.MatterTypeSuggestions,
	}
	templates.Render(w, r, "case_new", data)
}

// HandleCreate processes the intake form. Validation runs before any
// store call; on failure the form re-renders with entered values intact
// and a message naming the first problem. On success it redirects to
// the new matter's contacts tab using the insert response id.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/cases")
		return
	}

	form := caseForm{
		MatterName:  strings.TrimSpace(r.FormValue("matter_name")),
		ContactName: strings.TrimSpace(r.FormValue("contact_name")),
		Opponent:    strings.TrimSpace(r.FormValue("opponent")),
		Status:      r.FormValue("status"),
		MatterType:  strings.TrimSpace(r.FormValue("matter_type")),

		RateType:         r.FormValue("matter_rate_type"),
		RateAmount:       r.FormValue("matter_rate_amount"),
		Paid:             r.FormValue("paid"),
		InvoicesDue:      r.FormValue("invoices_due"),
		TrustBalance:     r.FormValue("trust_balance"),
		OperatingBalance: r.FormValue("operating_balance"),

		OpenDate:             r.FormValue("open_date"),
		CloseDate:            r.FormValue("close_date"),
		StatuteOfLimitations: r.FormValue("statute_of_limitations_date"),

		OpposingAttorney: strings.TrimSpace(r.FormValue("opposing_attorney")),
		PropertyAddress:  strings.TrimSpace(r.FormValue("property_address")),
		Tags:             r.FormValue("tags"),
		Evergreen:        r.FormValue("evergreen") != "",
	}

	reRender := func(msg string) {
		templates.Render(w, r, "case_new", newData{
			BaseVM:      viewdata.NewBaseVM(r, "New Case Intake", "/cases"),
			Form:        form,
			MatterTypes: models.MatterTypeSuggestions,
			Error:       template.HTML(msg),
		})
	}

	if result := inputval.Validate(createMatterInput{MatterName: form.MatterName}); result.HasErrors() {
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
	paid, err := inputval.ParseMoney(form.Paid, "Paid")
	if err != nil {
		reRender(err.Error())
		return
	}
	invoicesDue, err := inputval.ParseMoney(form.InvoicesDue, "Invoices due")
	if err != nil {
		reRender(err.Error())
		return
	}
	trustBalance, err := inputval.ParseMoney(form.TrustBalance, "Trust balance")
	if err != nil {
		reRender(err.Error())
		return
	}
	operatingBalance, err := inputval.ParseMoney(form.OperatingBalance, "Operating balance")
	if err != nil {
		reRender(err.Error())
		return
	}

	openDate, err := parseDate(form.OpenDate, "Open date")
	if err != nil {
		reRender(err.Error())
		return
	}
	closeDate, err := parseDate(form.CloseDate, "Close date")
	if err != nil {
		reRender(err.Error())
		return
	}
	statuteDate, err := parseDate(form.StatuteOfLimitations, "Statute of limitations")
	if err != nil {
		reRender(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := matterstore.New(h.DB)
	created, err := store.Create(ctx, models.Matter{
		MatterName:  form.MatterName,
		ContactName: form.ContactName,
		Opponent:    form.Opponent,
		Status:      form.Status,
		MatterType:  form.MatterType,

		RateType:   form.RateType,
		RateAmount: rateAmount,

		Paid:             paid,
		InvoicesDue:      invoicesDue,
		TrustBalance:     trustBalance,
		OperatingBalance: operatingBalance,

		OpenDate:             openDate,
		CloseDate:            closeDate,
		StatuteOfLimitations: statuteDate,

		OpposingAttorney: form.OpposingAttorney,
		PropertyAddress:  form.PropertyAddress,
		Tags:             inputval.SplitTags(form.Tags),
		Evergreen:        form.Evergreen,
	})
	if err != nil {
		h.Log.Error("database error creating matter", zap.Error(err))
		reRender("Failed to create case. A database error occurred.")
		return
	}

	h.Log.Info("matter created",
		zap.String("matter_id", created.ID.Hex()),
		zap.String("matter_name", created.MatterName))

	http.Redirect(w, r, "/matters/"+created.ID.Hex()+"?tab=contacts", http.StatusSeeOther)
}

// parseDate parses an optional yyyy-mm-dd form value; empty means
// absent.
func parseDate(raw, label string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid date", label)
	}
	return &t, nil
}
