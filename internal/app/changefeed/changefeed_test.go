package changefeed_test

import (
	"testing"
	"time"

	"github.com/dalemusser/matterhub/internal/app/changefeed"
	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// awaitEvent receives one event or fails the test. Change streams need a
// replica set; subscribing fails fast on a standalone server and the
// caller skips.
func awaitEvent[T any](t *testing.T, events <-chan changefeed.Event[T]) changefeed.Event[T] {
	t.Helper()
	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		return ev
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for change event")
		panic("unreachable")
	}
}

func TestSubscribeDeliversLifecycleEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	sub, err := changefeed.Subscribe[models.Matter](ctx, db, matterstore.Collection, nil, zap.NewNop())
	if err != nil {
		t.Skipf("skipping: change streams unavailable: %v", err)
	}
	defer sub.Close()

	store := matterstore.New(db)
	created, err := store.Create(ctx, models.Matter{MatterName: "Streamed"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ev := awaitEvent(t, sub.Events())
	if ev.Kind != changefeed.KindInsert || ev.ID != created.ID.Hex() {
		t.Fatalf("insert event: kind=%v id=%v", ev.Kind, ev.ID)
	}
	if ev.Doc == nil || ev.Doc.MatterName != "Streamed" {
		t.Fatalf("insert event doc: %+v", ev.Doc)
	}

	if err := store.UpdateInfo(ctx, created.ID, models.Matter{MatterName: "Streamed v2"}); err != nil {
		t.Fatalf("UpdateInfo: %v", err)
	}
	ev = awaitEvent(t, sub.Events())
	if ev.Kind != changefeed.KindUpdate || ev.Doc == nil || ev.Doc.MatterName != "Streamed v2" {
		t.Fatalf("update event: kind=%v doc=%+v", ev.Kind, ev.Doc)
	}

	if _, err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ev = awaitEvent(t, sub.Events())
	if ev.Kind != changefeed.KindDelete || ev.ID != created.ID.Hex() {
		t.Fatalf("delete event: kind=%v id=%v", ev.Kind, ev.ID)
	}
	if ev.Doc != nil {
		t.Error("delete events must not carry a document")
	}
}

func TestSubscribeScopedToMatter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()

	sub, err := changefeed.Subscribe[models.Contact](ctx, db, contactstore.Collection, &mine, zap.NewNop())
	if err != nil {
		t.Skipf("skipping: change streams unavailable: %v", err)
	}
	defer sub.Close()

	store := contactstore.New(db)
	if _, err := store.Create(ctx, models.Contact{MatterID: other, Name: "Out of scope"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	inScope, err := store.Create(ctx, models.Contact{MatterID: mine, Name: "In scope"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The first delivered insert must be the in-scope one; the other
	// matter's insert is filtered server-side.
	ev := awaitEvent(t, sub.Events())
	if ev.Kind != changefeed.KindInsert || ev.ID != inScope.ID.Hex() {
		t.Fatalf("scoped feed leaked: kind=%v id=%v", ev.Kind, ev.ID)
	}
}

func TestCloseIsIdempotentAndEndsDelivery(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	sub, err := changefeed.Subscribe[models.Matter](ctx, db, matterstore.Collection, nil, zap.NewNop())
	if err != nil {
		t.Skipf("skipping: change streams unavailable: %v", err)
	}

	sub.Close()
	sub.Close()

	select {
	case _, ok := <-sub.Events():
		if ok {
			t.Error("no event should be delivered after Close")
		}
	case <-time.After(2 * time.Second):
		t.Error("event channel should close after Close")
	}

	if sub.ID() == "" {
		t.Error("subscription id should be set")
	}
}
