package notestore_test

import (
	"testing"
	"time"

	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateStartsUnedited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notestore.New(db)

	created, err := store.Create(ctx, models.Note{
		MatterID: primitive.NewObjectID(),
		NoteText: "first draft",
		Edited:   true, // must be ignored on create
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Edited || created.EditedAt != nil {
		t.Error("new notes must start unedited")
	}
}

func TestUpdateTextSetsEditedPermanently(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notestore.New(db)

	created, err := store.Create(ctx, models.Note{MatterID: primitive.NewObjectID(), NoteText: "v1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.UpdateText(ctx, created.ID, "v2"); err != nil {
		t.Fatalf("UpdateText: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NoteText != "v2" {
		t.Errorf("NoteText = %q", got.NoteText)
	}
	if !got.Edited || got.EditedAt == nil {
		t.Error("edit must set the edited flag and timestamp")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("edits must not change CreatedAt")
	}

	if err := store.UpdateText(ctx, primitive.NewObjectID(), "x"); err != notestore.ErrNotFound {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestListByMatterNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notestore.New(db)

	matterID := primitive.NewObjectID()
	older, err := store.Create(ctx, models.Note{MatterID: matterID, NoteText: "older"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Create(ctx, models.Note{MatterID: matterID, NoteText: "newer"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, models.Note{MatterID: primitive.NewObjectID(), NoteText: "elsewhere"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.ListByMatter(ctx, matterID)
	if err != nil {
		t.Fatalf("ListByMatter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].NoteText != "newer" {
		t.Errorf("newest first: head = %q", got[0].NoteText)
	}

	// Editing the older note must not move it to the head.
	if err := store.UpdateText(ctx, older.ID, "older, edited"); err != nil {
		t.Fatalf("UpdateText: %v", err)
	}
	got, err = store.ListByMatter(ctx, matterID)
	if err != nil {
		t.Fatalf("ListByMatter: %v", err)
	}
	if got[0].NoteText != "newer" {
		t.Errorf("edit reordered the list: head = %q", got[0].NoteText)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notestore.New(db)

	created, err := store.Create(ctx, models.Note{MatterID: primitive.NewObjectID(), NoteText: "gone"})
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
