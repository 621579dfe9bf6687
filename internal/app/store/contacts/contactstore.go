// internal/app/store/contacts/contactstore.go
package contactstore

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

// Collection is the backing collection name for matter contacts.
const Collection = "matter_contacts"

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("contact not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a new contact under its matter.
func (s *Store) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// GetByID retrieves a contact by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Contact, error) {
	var c models.Contact
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Contact{}, ErrNotFound
		}
		return models.Contact{}, err
	}
	return c, nil
}

// Update patches a contact's editable fields. The role flags always
// write so they can be cleared.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, c models.Contact) error {
	set := bson.M{
		"name":             c.Name,
		"relation_to_case": c.RelationToCase,
		"address":          c.Address,
		"email":            c.Email,
		"phone":            c.Phone,
		"description":      c.Description,
		"is_plaintiff":     c.IsPlaintiff,
		"is_defendant":     c.IsDefendant,
		"updated_at":       time.Now().UTC(),
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a contact by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByMatter returns a matter's contacts in insertion order (created_at
// ascending). The display's role-priority sort is derived at render time.
func (s *Store) ListByMatter(ctx context.Context, matterID primitive.ObjectID) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"matter_id": matterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var contacts []models.Contact
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Count returns the number of contacts matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the matter_contacts collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "matter_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_contact_matter_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
