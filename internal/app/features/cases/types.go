// internal/app/features/cases/types.go
package cases

import (
	"html/template"

	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
)

// listData is the view model for the dashboard page.
type listData struct {
	viewdata.BaseVM
	rowsData
	Search      string
	Status      string
	MatterType  string
	TypeOptions []string
	Filtered    bool // any filter active, changes the empty-state copy
}

// rowsData is the view model for the list body. It is rendered both
// inline on the dashboard page and as the snippet pushed over the live
// socket.
type rowsData struct {
	Loading   bool
	Rows      []matterRow
	Total     int
	Truncated bool
}

// matterRow is one dashboard entry.
type matterRow struct {
	ID          string
	Name        string
	MatterType  string
	Status      string
	StatusBadge string
	Updated     string
}

// caseForm echoes the intake form fields back on validation failure.
// All values stay raw strings; parsing happens in HandleCreate.
type caseForm struct {
	MatterName  string
	ContactName string
	Opponent    string
	Status      string
	MatterType  string

	RateType         string
	RateAmount       string
	Paid             string
	InvoicesDue      string
	TrustBalance     string
	OperatingBalance string

	OpenDate             string
	CloseDate            string
	StatuteOfLimitations string

	OpposingAttorney string
	PropertyAddress  string
	Tags             string
	Evergreen        bool
}

// newData is the view model for the intake form.
type newData struct {
	viewdata.BaseVM
	Form        caseForm
	MatterTypes []string
	Error       template.HTML
}
