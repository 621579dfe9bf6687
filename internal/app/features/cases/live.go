// internal/app/features/cases/live.go
package cases

import (
	"net/http"

	"github.com/dalemusser/matterhub/internal/app/changefeed"
	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/syncview"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeLive upgrades to a websocket and pushes re-rendered dashboard
// rows whenever the matters collection changes. The mirror lives
// exactly as long as the socket: subscribe on open, release on every
// exit path.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	search := query.Get(r, "search")
	status := query.Get(r, "status")
	matterType := query.Get(r, "type")

	conn, err := livepush.Upgrade(w, r)
	if err != nil {
		h.Log.Warn("dashboard live upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub, err := changefeed.Subscribe[models.Matter](r.Context(), h.DB, matterstore.Collection, nil, h.Log)
	if err != nil {
		h.Log.Error("dashboard change feed subscribe failed", zap.Error(err))
		return
	}

	store := matterstore.New(h.DB)
	view := syncview.New(r.Context(), syncview.Config[models.Matter]{
		Seed:      store.List,
		Events:    sub.Events(),
		Release:   sub.Close,
		Placement: syncview.PrependNewest,
		Log:       h.Log.With(zap.String("view", "cases"), zap.String("subscription", sub.ID())),
	})
	defer view.Close()

	live := h.Live
	live.Log = h.Log
	livepush.Serve(r.Context(), conn, view.Changed(), func() []byte {
		items, state := view.Snapshot()
		data := buildRows(FilterMatters(items, search, status, matterType), state)
		return livepush.Snapshot("case_rows", data)
	}, live)
}
