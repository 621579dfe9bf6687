package matterstore_test

import (
	"testing"
	"time"

	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAppliesDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := matterstore.New(db)

	created, err := store.Create(ctx, models.Matter{MatterName: "Smith v. Jones"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("ID not generated")
	}
	if created.Status != models.StatusOpen {
		t.Errorf("Status = %q, want %q", created.Status, models.StatusOpen)
	}
	if created.RateType != models.RateFlat {
		t.Errorf("RateType = %q, want %q", created.RateType, models.RateFlat)
	}
	if created.Tags == nil {
		t.Error("Tags should never be nil")
	}
	if created.NameCI == "" {
		t.Error("NameCI not derived")
	}
}

func TestGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := matterstore.New(db)

	created, err := store.Create(ctx, models.Matter{MatterName: "Estate of Brown"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.MatterName != "Estate of Brown" {
		t.Errorf("MatterName = %q", got.MatterName)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != matterstore.ErrNotFound {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := matterstore.New(db)

	created, err := store.Create(ctx, models.Matter{MatterName: "Before", MatterType: "Traffic"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	amount := 500.0
	patch := models.Matter{
		MatterName: "After",
		Status:     models.StatusClose,
		RateType:   models.RateCustom,
		RateAmount: &amount,
	}
	if err := store.UpdateInfo(ctx, created.ID, patch); err != nil {
		t.Fatalf("UpdateInfo: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.MatterName != "After" || got.Status != models.StatusClose || got.RateType != models.RateCustom {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.RateAmount == nil || *got.RateAmount != 500.0 {
		t.Errorf("RateAmount = %v, want 500", got.RateAmount)
	}
	if got.MatterType != "" {
		t.Errorf("empty MatterType in patch should clear the field, got %q", got.MatterType)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Error("UpdatedAt not bumped")
	}

	if err := store.UpdateInfo(ctx, primitive.NewObjectID(), patch); err != matterstore.ErrNotFound {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestListOrdersByUpdatedAtDescending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := matterstore.New(db)

	first, err := store.Create(ctx, models.Matter{MatterName: "First"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Create(ctx, models.Matter{MatterName: "Second"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].MatterName != "Second" {
		t.Errorf("newest first: got %q at head", got[0].MatterName)
	}

	// Touching the older matter moves it to the head.
	time.Sleep(5 * time.Millisecond)
	if err := store.UpdateInfo(ctx, first.ID, models.Matter{MatterName: "First touched"}); err != nil {
		t.Fatalf("UpdateInfo: %v", err)
	}
	got, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].MatterName != "First touched" {
		t.Errorf("updated matter should lead, got %q", got[0].MatterName)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := matterstore.New(db)

	created, err := store.Create(ctx, models.Matter{MatterName: "Doomed"})
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
