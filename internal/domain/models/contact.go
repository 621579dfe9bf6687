// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a person or party attached to exactly one matter.
//
// IsPlaintiff and IsDefendant are independent flags: a contact may be
// both, or neither. Display ordering is derived at render time and never
// persisted.
type Contact struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	MatterID primitive.ObjectID `bson:"matter_id" json:"matter_id"`

	Name           string `bson:"name" json:"name"`
	RelationToCase string `bson:"relation_to_case" json:"relation_to_case"`
	Address        string `bson:"address,omitempty" json:"address,omitempty"`
	Email          string `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string `bson:"phone,omitempty" json:"phone,omitempty"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`

	IsPlaintiff bool `bson:"is_plaintiff" json:"is_plaintiff"`
	IsDefendant bool `bson:"is_defendant" json:"is_defendant"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EntityID satisfies syncview.Entity.
func (c Contact) EntityID() string { return c.ID.Hex() }
