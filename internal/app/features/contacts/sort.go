// internal/app/features/contacts/sort.go
package contacts

import (
	"sort"

	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// SortContacts orders a copy of contacts for display: plaintiffs first
// (a contact flagged both plaintiff and defendant counts as plaintiff),
// then defendants, then everyone else, alphabetically within each tier
// with the id as a tie-break. The order is total, so two renders of the
// same set always agree.
func SortContacts(contacts []models.Contact) []models.Contact {
	out := make([]models.Contact, len(contacts))
	copy(out, contacts)

	sort.Slice(out, func(i, j int) bool {
		ti, tj := roleTier(out[i]), roleTier(out[j])
		if ti != tj {
			return ti < tj
		}
		ni, nj := text.Fold(out[i].Name), text.Fold(out[j].Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

func roleTier(c models.Contact) int {
	switch {
	case c.IsPlaintiff:
		return 0
	case c.IsDefendant:
		return 1
	default:
		return 2
	}
}
