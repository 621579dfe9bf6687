// internal/app/store/notes/notestore.go
package notestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/matterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the backing collection name for matter notes.
const Collection = "matter_notes"

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("note not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a new note under its matter.
func (s *Store) Create(ctx context.Context, n models.Note) (models.Note, error) {
	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.Edited = false
	n.EditedAt = nil
	n.CreatedAt = now
	n.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

// GetByID retrieves a note by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Note, error) {
	var n models.Note
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, err
	}
	return n, nil
}

// UpdateText replaces a note's text in full. The edited flag is set and
// never cleared again; edited_at records the edit time. CreatedAt is
// untouched so edits do not reorder the list.
func (s *Store) UpdateText(ctx context.Context, id primitive.ObjectID, text string) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"note_text":  text,
		"edited":     true,
		"edited_at":  now,
		"updated_at": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a note by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByMatter returns a matter's notes newest first by creation time.
func (s *Store) ListByMatter(ctx context.Context, matterID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"matter_id": matterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notes []models.Note
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Count returns the number of notes matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the matter_notes collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "matter_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_note_matter_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
