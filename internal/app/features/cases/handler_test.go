package cases_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/matterhub/internal/app/features/cases"
	uierrors "github.com/dalemusser/matterhub/internal/app/features/errors"
	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/matterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*cases.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return cases.NewHandler(db, errLog, livepush.Config{Log: logger}, logger), db
}

func TestNewHandler(t *testing.T) {
	h, _ := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeList(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/cases?search=test&status=open&type=all")
	rec := testutil.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests
			}
		}()
		handler.ServeList(rec.ResponseRecorder, req)
	}()
}

func TestServeNew(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/cases/new")
	rec := testutil.NewRecorder()

	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests
			}
		}()
		handler.ServeNew(rec.ResponseRecorder, req)
	}()
}

func TestHandleCreateRedirectsToContactsTab(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	form := url.Values{}
	form.Set("matter_name", "Smith v. Jones")
	form.Set("status", "open")
	form.Set("matter_rate_type", "flat rate")
	form.Set("paid", "100")
	form.Set("tags", "estate, urgent")
	form.Set("open_date", "2025-06-15")

	req := testutil.NewFormRequest("/cases", form)
	rec := testutil.NewRecorder()
	handler.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusSeeOther)
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/matters/") || !strings.HasSuffix(loc, "?tab=contacts") {
		t.Errorf("Location = %q, want /matters/{id}?tab=contacts", loc)
	}

	n, err := matterstore.New(db).Count(ctx, bson.M{"matter_name": "Smith v. Jones"})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("stored %d matters, want 1", n)
	}
}

func TestHandleCreateRejectsBadInputWithoutStoring(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	bad := []url.Values{
		{"matter_name": {""}, "status": {"open"}, "matter_rate_type": {"flat rate"}},
		{"matter_name": {"X"}, "status": {"pending"}, "matter_rate_type": {"flat rate"}},
		{"matter_name": {"X"}, "status": {"open"}, "matter_rate_type": {"hourly"}},
		{"matter_name": {"X"}, "status": {"open"}, "matter_rate_type": {"flat rate"}, "paid": {"lots"}},
		{"matter_name": {"X"}, "status": {"open"}, "matter_rate_type": {"flat rate"}, "open_date": {"June 1"}},
	}

	for _, form := range bad {
		req := testutil.NewFormRequest("/cases", form)
		rec := testutil.NewRecorder()

		// Failure re-renders the form, which may panic without initialized templates
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Template rendering may panic in tests
				}
			}()
			handler.HandleCreate(rec.ResponseRecorder, req)
		}()
	}

	n, err := matterstore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("invalid submits stored %d matters, want 0", n)
	}
}

func TestRoutes(t *testing.T) {
	handler, _ := newTestHandler(t)
	if router := cases.Routes(handler); router == nil {
		t.Fatal("Routes() returned nil")
	}
}
