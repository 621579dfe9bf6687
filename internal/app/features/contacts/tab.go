// internal/app/features/contacts/tab.go
package contacts

import (
	"context"

	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildTab assembles the contacts tab for the matter detail page from a
// one-shot query. The tab then keeps itself current over the live
// socket.
func BuildTab(ctx context.Context, db *mongo.Database, matterID primitive.ObjectID) (TabData, error) {
	store := contactstore.New(db)
	list, err := store.ListByMatter(ctx, matterID)
	if err != nil {
		return TabData{}, err
	}
	return TabData{
		CardsData: buildCards(matterID.Hex(), list, false),
	}, nil
}
