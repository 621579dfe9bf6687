// internal/app/features/cases/filter.go
package cases

import (
	"strings"

	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// listCap bounds how many rows the dashboard shows at once.
const listCap = 20

// FilterMatters applies the dashboard filters conjunctively: a
// case-insensitive name substring, a status equality, and a matter type
// equality. Empty (or "all") filter values match everything. Input
// order is preserved.
func FilterMatters(matters []models.Matter, search, status, matterType string) []models.Matter {
	search = text.Fold(strings.TrimSpace(search))
	if status == "all" {
		status = ""
	}
	if matterType == "all" {
		matterType = ""
	}

	out := make([]models.Matter, 0, len(matters))
	for _, m := range matters {
		if search != "" && !strings.Contains(text.Fold(m.MatterName), search) {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		if matterType != "" && m.MatterType != matterType {
			continue
		}
		out = append(out, m)
	}
	return out
}

// typeOptions returns the distinct non-empty matter types present, in
// first-seen order, for the dashboard type filter.
func typeOptions(matters []models.Matter) []string {
	seen := make(map[string]bool)
	var types []string
	for _, m := range matters {
		if m.MatterType == "" || seen[m.MatterType] {
			continue
		}
		seen[m.MatterType] = true
		types = append(types, m.MatterType)
	}
	return types
}
