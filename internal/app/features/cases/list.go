// internal/app/features/cases/list.go
package cases

import (
	"context"
	"net/http"

	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/syncview"
	"github.com/dalemusser/matterhub/internal/app/system/timefmt"
	"github.com/dalemusser/matterhub/internal/app/system/timeouts"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList renders the dashboard page with a one-shot snapshot. The
// page then opens the live socket for updates; the plain GET works on
// its own without it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := matterstore.New(h.DB)
	matters, err := store.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing matters", err, "A database error occurred.", "/")
		return
	}

	search := query.Get(r, "search")
	status := query.Get(r, "status")
	matterType := query.Get(r, "type")

	filtered := FilterMatters(matters, search, status, matterType)

	data := listData{
		BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/"),
		rowsData:    buildRows(filtered, syncview.StatePopulated),
		Search:      search,
		Status:      status,
		MatterType:  matterType,
		TypeOptions: typeOptions(matters),
		Filtered:    search != "" || (status != "" && status != "all") || (matterType != "" && matterType != "all"),
	}

	templates.Render(w, r, "case_list", data)
}

// buildRows shapes a filtered snapshot for display, applying the row
// cap. The snippet template renders the same data inline and over the
// live socket.
func buildRows(matters []models.Matter, state syncview.State) rowsData {
	total := len(matters)
	shown := matters
	if total > listCap {
		shown = matters[:listCap]
	}

	rows := make([]matterRow, len(shown))
	for i, m := range shown {
		matterType := m.MatterType
		if matterType == "" {
			matterType = "No type"
		}
		rows[i] = matterRow{
			ID:          m.ID.Hex(),
			Name:        m.MatterName,
			MatterType:  matterType,
			Status:      m.Status,
			StatusBadge: statusBadge(m.Status),
			Updated:     timefmt.Relative(m.UpdatedAt),
		}
	}

	return rowsData{
		Loading:   state == syncview.StateLoading,
		Rows:      rows,
		Total:     total,
		Truncated: total > listCap,
	}
}

// statusBadge returns a CSS class suffix for the status badge.
func statusBadge(status string) string {
	if status == models.StatusOpen {
		return "success"
	}
	return "secondary"
}
