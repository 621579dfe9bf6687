// internal/app/store/matters/matterstore.go
package matterstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/matterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the backing collection name for matters.
const Collection = "matters"

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("matter not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a new matter. Zero balances stay zero; status and rate
// type fall back to their defaults when unset.
func (s *Store) Create(ctx context.Context, m models.Matter) (models.Matter, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.NameCI = text.Fold(m.MatterName)
	if m.Status == "" {
		m.Status = models.StatusOpen
	}
	if m.RateType == "" {
		m.RateType = models.RateFlat
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Matter{}, err
	}
	return m, nil
}

// GetByID retrieves a matter by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Matter, error) {
	var m models.Matter
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Matter{}, ErrNotFound
		}
		return models.Matter{}, err
	}
	return m, nil
}

// UpdateInfo patches the editable info-tab fields and bumps updated_at.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, patch models.Matter) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if patch.MatterName != "" {
		set["matter_name"] = patch.MatterName
		set["matter_name_ci"] = text.Fold(patch.MatterName)
	}
	if patch.Status != "" {
		set["status"] = patch.Status
	}
	if patch.RateType != "" {
		set["matter_rate_type"] = patch.RateType
	}
	// Nullable fields: empty clears, so always write.
	set["matter_type"] = patch.MatterType
	set["matter_rate_amount"] = patch.RateAmount

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a matter by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns all matters ordered by last update, newest first. This is
// the seed query for the dashboard's synchronized view.
func (s *Store) List(ctx context.Context) ([]models.Matter, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	return s.Find(ctx, bson.M{}, opts)
}

// Find returns matters matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Matter, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var matters []models.Matter
	if err := cur.All(ctx, &matters); err != nil {
		return nil, err
	}
	return matters, nil
}

// Count returns the number of matters matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the matters collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Dashboard ordering
		{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("idx_matter_updated_at"),
		},
		// Case-insensitive name for search
		{
			Keys:    bson.D{{Key: "matter_name_ci", Value: 1}},
			Options: options.Index().SetName("idx_matter_name_ci"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_matter_status"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
