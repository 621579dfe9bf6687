package notes_test

import (
	"net/http"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/matterhub/internal/app/features/errors"
	"github.com/dalemusser/matterhub/internal/app/features/notes"
	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*notes.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return notes.NewHandler(db, errLog, livepush.Config{Log: logger}, logger), db
}

func TestNewHandler(t *testing.T) {
	h, _ := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestHandleAddCreatesNote(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	matter := fx.CreateMatter(ctx, "Notes Case")

	form := url.Values{}
	form.Set("note_text", "Client called about **settlement**")

	req := testutil.NewFormRequest("/matters/"+matter.ID.Hex()+"/notes", form)
	req = testutil.WithChiURLParam(req, "id", matter.ID.Hex())
	rec := testutil.NewRecorder()
	handler.HandleAdd(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/matters/"+matter.ID.Hex()+"?tab=notes")
	list, err := notestore.New(db).ListByMatter(ctx, matter.ID)
	if err != nil {
		t.Fatalf("ListByMatter: %v", err)
	}
	if len(list) != 1 || list[0].NoteText != "Client called about **settlement**" {
		t.Errorf("stored notes: %+v", list)
	}
	if list[0].Edited {
		t.Error("new note must start unedited")
	}
}

func TestHandleAddIgnoresWhitespaceOnlyText(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	matter := fx.CreateMatter(ctx, "Quiet Case")

	form := url.Values{}
	form.Set("note_text", "   \n\t ")

	req := testutil.NewFormRequest("/matters/"+matter.ID.Hex()+"/notes", form)
	req = testutil.WithChiURLParam(req, "id", matter.ID.Hex())
	rec := testutil.NewRecorder()
	handler.HandleAdd(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/matters/"+matter.ID.Hex()+"?tab=notes")
	list, err := notestore.New(db).ListByMatter(ctx, matter.ID)
	if err != nil {
		t.Fatalf("ListByMatter: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("whitespace-only text stored %d notes, want 0", len(list))
	}
}

func TestHandleAddMalformedMatterIDIs404(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/matters/not-an-id/notes", url.Values{"note_text": {"x"}})
	req = testutil.WithChiURLParam(req, "id", "not-an-id")
	rec := testutil.NewRecorder()
	handler.HandleAdd(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeDeleteConfirmDoesNotDelete(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	matter := fx.CreateMatter(ctx, "Confirm Case")
	note := fx.CreateNote(ctx, matter.ID, "keep me until confirmed")

	req := testutil.NewRequest("GET", "/matters/"+matter.ID.Hex()+"/notes/"+note.ID.Hex()+"/delete")
	req = testutil.WithChiURLParams(req, map[string]string{
		"id":     matter.ID.Hex(),
		"noteID": note.ID.Hex(),
	})
	rec := testutil.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests
			}
		}()
		handler.ServeDeleteConfirm(rec.ResponseRecorder, req)
	}()

	if _, err := notestore.New(db).GetByID(ctx, note.ID); err != nil {
		t.Errorf("confirmation page must not delete: %v", err)
	}
}

func TestHandleDeleteRemovesNote(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	matter := fx.CreateMatter(ctx, "Delete Case")
	note := fx.CreateNote(ctx, matter.ID, "goodbye")

	req := testutil.NewFormRequest("/matters/"+matter.ID.Hex()+"/notes/"+note.ID.Hex()+"/delete", url.Values{})
	req = testutil.WithChiURLParams(req, map[string]string{
		"id":     matter.ID.Hex(),
		"noteID": note.ID.Hex(),
	})
	rec := testutil.NewRecorder()
	handler.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/matters/"+matter.ID.Hex()+"?tab=notes")
	if _, err := notestore.New(db).GetByID(ctx, note.ID); err != notestore.ErrNotFound {
		t.Errorf("note still present after delete: err = %v", err)
	}
}

func TestHandleEditReplacesTextAndFlags(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	matter := fx.CreateMatter(ctx, "Edit Case")
	note := fx.CreateNote(ctx, matter.ID, "first wording")

	form := url.Values{}
	form.Set("note_text", "second wording")

	req := testutil.NewFormRequest("/matters/"+matter.ID.Hex()+"/notes/"+note.ID.Hex()+"/edit", form)
	req = testutil.WithChiURLParams(req, map[string]string{
		"id":     matter.ID.Hex(),
		"noteID": note.ID.Hex(),
	})
	rec := testutil.NewRecorder()
	handler.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/matters/"+matter.ID.Hex()+"?tab=notes")
	got, err := notestore.New(db).GetByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NoteText != "second wording" {
		t.Errorf("NoteText = %q", got.NoteText)
	}
	if !got.Edited || got.EditedAt == nil {
		t.Error("edit must set the edited flag and timestamp")
	}
}

func TestRoutes(t *testing.T) {
	handler, _ := newTestHandler(t)
	if router := notes.Routes(handler); router == nil {
		t.Fatal("Routes() returned nil")
	}
}
