// internal/app/features/notes/tab.go
package notes

import (
	"context"

	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildTab assembles the notes tab for the matter detail page from a
// one-shot query. The tab then keeps itself current over the live
// socket.
func BuildTab(ctx context.Context, db *mongo.Database, matterID primitive.ObjectID, csrfToken string) (TabData, error) {
	store := notestore.New(db)
	list, err := store.ListByMatter(ctx, matterID)
	if err != nil {
		return TabData{}, err
	}
	return TabData{
		ListData:  buildList(matterID.Hex(), list, false),
		CSRFToken: csrfToken,
	}, nil
}
