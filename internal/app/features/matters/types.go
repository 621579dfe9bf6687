// internal/app/features/matters/types.go
package matters

import (
	"html/template"

	"github.com/dalemusser/matterhub/internal/app/features/contacts"
	"github.com/dalemusser/matterhub/internal/app/features/notes"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
)

// tabLink is one entry in the detail page's tab strip.
type tabLink struct {
	ID    string
	Label string
}

// tabs is the fixed tab strip. Time entry, payment tracking, Gmail, and
// Google Docs render static placeholder copy for now.
var tabs = []tabLink{
	{ID: "info", Label: "Matter Info"},
	{ID: "notes", Label: "Notes"},
	{ID: "time", Label: "Time Entry"},
	{ID: "payment", Label: "Payment Tracking"},
	{ID: "contacts", Label: "Relationships/Contacts"},
	{ID: "email", Label: "Gmail Integration"},
	{ID: "docs", Label: "Google Docs"},
}

// infoVM is the info tab's display fields.
type infoVM struct {
	MatterName string
	MatterType string
	Status     string
	RateType   string
}

// detailData is the view model for the matter detail page. Contacts and
// Notes are populated only when their tab is active.
type detailData struct {
	viewdata.BaseVM
	MatterID   string
	MatterName string
	MatterType string
	ActiveTab  string
	Tabs       []tabLink

	Info infoVM

	RateTypeLabel string // time entry banner
	RateAmount    string
	HasRateAmount bool

	Contacts contacts.TabData
	Notes    notes.TabData
}

// editForm echoes the info edit form fields on validation failure.
type editForm struct {
	MatterName string
	Status     string
	MatterType string
	RateType   string
	RateAmount string
}

// editData is the view model for the info edit page.
type editData struct {
	viewdata.BaseVM
	MatterID    string
	Form        editForm
	MatterTypes []string
	Error       template.HTML
}
