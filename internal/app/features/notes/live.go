// internal/app/features/notes/live.go
package notes

import (
	"context"
	"net/http"

	"github.com/dalemusser/matterhub/internal/app/changefeed"
	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/app/syncview"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeLive upgrades to a websocket and pushes a re-rendered note list
// for one matter whenever its notes change. New notes land first; edits
// keep their place.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	matterID, ok := matterParam(w, r)
	if !ok {
		return
	}

	conn, err := livepush.Upgrade(w, r)
	if err != nil {
		h.Log.Warn("notes live upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub, err := changefeed.Subscribe[models.Note](r.Context(), h.DB, notestore.Collection, &matterID, h.Log)
	if err != nil {
		h.Log.Error("notes change feed subscribe failed", zap.Error(err))
		return
	}

	store := notestore.New(h.DB)
	view := syncview.New(r.Context(), syncview.Config[models.Note]{
		Seed: func(ctx context.Context) ([]models.Note, error) {
			return store.ListByMatter(ctx, matterID)
		},
		Events:    sub.Events(),
		Release:   sub.Close,
		Placement: syncview.PrependNewest,
		Log:       h.Log.With(zap.String("view", "notes"), zap.String("subscription", sub.ID())),
	})
	defer view.Close()

	live := h.Live
	live.Log = h.Log
	livepush.Serve(r.Context(), conn, view.Changed(), func() []byte {
		items, state := view.Snapshot()
		return livepush.Snapshot("note_list", buildList(matterID.Hex(), items, state == syncview.StateLoading))
	}, live)
}
