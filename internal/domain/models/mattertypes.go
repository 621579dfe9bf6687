// internal/domain/models/mattertypes.go
package models

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "MatterHub"

// Matter status values.
const (
	StatusOpen  = "open"
	StatusClose = "close"
)

// Billing rate types.
const (
	RateFlat        = "flat rate"
	RateContingency = "contingency"
	RateCustom      = "custom"
)

// MatterStatuses lists the valid status values.
var MatterStatuses = []string{StatusOpen, StatusClose}

// RateTypes lists the valid billing rate types.
var RateTypes = []string{RateFlat, RateContingency, RateCustom}

// MatterTypeSuggestions is the fixed suggestion list for the intake form.
// Matter type itself is free-form and may be empty.
var MatterTypeSuggestions = []string{
	"RE-Purchase",
	"RE-Sale",
	"RE-QCD",
	"Probate Matter",
	"Civil-Contract",
	"Traffic",
	"Last Will and Testament",
	"PI-Auto",
	"PI-Animal Control Act",
	"Medical Malpractice",
	"Civil-OOP",
	"Workers Compensation",
}

// IsValidStatus reports whether s is a recognized matter status.
func IsValidStatus(s string) bool {
	return s == StatusOpen || s == StatusClose
}

// IsValidRateType reports whether s is a recognized billing rate type.
func IsValidRateType(s string) bool {
	for _, rt := range RateTypes {
		if s == rt {
			return true
		}
	}
	return false
}
