package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	return WithChiURLParams(r, map[string]string{key: value})
}

// WithChiURLParams adds several chi URL parameters at once, for nested
// routes like /matters/{id}/contacts/{contactID}.
func WithChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMatter creates an open test matter with the given name.
// Returns the created matter with its generated ID.
func (f *Fixtures) CreateMatter(ctx context.Context, name string) models.Matter {
	f.t.Helper()
	return f.CreateMatterWithDetails(ctx, name, models.StatusOpen, "Probate Matter")
}

// CreateMatterWithDetails creates a test matter with the given status and type.
func (f *Fixtures) CreateMatterWithDetails(ctx context.Context, name, status, matterType string) models.Matter {
	f.t.Helper()

	now := time.Now().UTC()
	openDate := now
	matter := models.Matter{
		ID:         primitive.NewObjectID(),
		MatterName: name,
		NameCI:     text.Fold(name),
		Status:     status,
		MatterType: matterType,
		RateType:   models.RateFlat,
		OpenDate:   &openDate,
		Tags:       []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("matters").InsertOne(ctx, matter)
	if err != nil {
		f.t.Fatalf("failed to create test matter: %v", err)
	}

	return matter
}

// CreateContact creates a test contact on the given matter.
func (f *Fixtures) CreateContact(ctx context.Context, matterID primitive.ObjectID, name string, plaintiff, defendant bool) models.Contact {
	f.t.Helper()

	now := time.Now().UTC()
	contact := models.Contact{
		ID:             primitive.NewObjectID(),
		MatterID:       matterID,
		Name:           name,
		RelationToCase: "Test relation",
		IsPlaintiff:    plaintiff,
		IsDefendant:    defendant,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := f.db.Collection("matter_contacts").InsertOne(ctx, contact)
	if err != nil {
		f.t.Fatalf("failed to create test contact: %v", err)
	}

	return contact
}

// CreateNote creates a test note on the given matter.
func (f *Fixtures) CreateNote(ctx context.Context, matterID primitive.ObjectID, text string) models.Note {
	f.t.Helper()

	now := time.Now().UTC()
	note := models.Note{
		ID:        primitive.NewObjectID(),
		MatterID:  matterID,
		NoteText:  text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("matter_notes").InsertOne(ctx, note)
	if err != nil {
		f.t.Fatalf("failed to create test note: %v", err)
	}

	return note
}
