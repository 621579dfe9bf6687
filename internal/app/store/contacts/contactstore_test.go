package contactstore_test

import (
	"testing"
	"time"

	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := contactstore.New(db)
	matterID := primitive.NewObjectID()

	created, err := store.Create(ctx, models.Contact{
		MatterID:       matterID,
		Name:           "Jane Roe",
		RelationToCase: "Client",
		IsPlaintiff:    true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("ID not generated")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Jane Roe" || !got.IsPlaintiff || got.MatterID != matterID {
		t.Errorf("got %+v", got)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != contactstore.ErrNotFound {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateClearsRoleFlags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := contactstore.New(db)

	created, err := store.Create(ctx, models.Contact{
		MatterID:    primitive.NewObjectID(),
		Name:        "Flagged",
		IsPlaintiff: true,
		IsDefendant: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Contact{Name: "Unflagged"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Unflagged" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.IsPlaintiff || got.IsDefendant {
		t.Error("role flags should be cleared when unset in the update")
	}

	if err := store.Update(ctx, primitive.NewObjectID(), models.Contact{Name: "x"}); err != contactstore.ErrNotFound {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestListByMatterScopedAndOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := contactstore.New(db)

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()

	if _, err := store.Create(ctx, models.Contact{MatterID: mine, Name: "First"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Create(ctx, models.Contact{MatterID: mine, Name: "Second"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, models.Contact{MatterID: other, Name: "Elsewhere"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.ListByMatter(ctx, mine)
	if err != nil {
		t.Fatalf("ListByMatter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "First" || got[1].Name != "Second" {
		t.Errorf("insertion order violated: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := contactstore.New(db)

	created, err := store.Create(ctx, models.Contact{MatterID: primitive.NewObjectID(), Name: "Gone"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete removed %d, want 0", n)
	}
}
