// internal/app/features/contacts/live.go
package contacts

import (
	"context"
	"net/http"

	"github.com/dalemusser/matterhub/internal/app/changefeed"
	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	"github.com/dalemusser/matterhub/internal/app/syncview"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeLive upgrades to a websocket and pushes re-rendered contact
// cards for one matter whenever its contacts change. Arrival order is
// canonical in the mirror; the role-tier sort is applied per render.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	conn, err := livepush.Upgrade(w, r)
	if err != nil {
		h.Log.Warn("contacts live upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub, err := changefeed.Subscribe[models.Contact](r.Context(), h.DB, contactstore.Collection, &matterID, h.Log)
	if err != nil {
		h.Log.Error("contacts change feed subscribe failed", zap.Error(err))
		return
	}

	store := contactstore.New(h.DB)
	view := syncview.New(r.Context(), syncview.Config[models.Contact]{
		Seed: func(ctx context.Context) ([]models.Contact, error) {
			return store.ListByMatter(ctx, matterID)
		},
		Events:    sub.Events(),
		Release:   sub.Close,
		Placement: syncview.AppendArrival,
		Log:       h.Log.With(zap.String("view", "contacts"), zap.String("subscription", sub.ID())),
	})
	defer view.Close()

	live := h.Live
	live.Log = h.Log
	livepush.Serve(r.Context(), conn, view.Changed(), func() []byte {
		items, state := view.Snapshot()
		return livepush.Snapshot("contact_cards", buildCards(matterID.Hex(), items, state == syncview.StateLoading))
	}, live)
}
