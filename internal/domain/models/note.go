// internal/domain/models/note.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a free-text note on a matter. NoteText carries the raw markup
// (**bold**, "•" bullet lines); rendering happens in notemarkup.
//
// Edited becomes true the first time the text is replaced and stays true
// for the life of the note. Display order is by CreatedAt (newest first);
// edits never reorder.
type Note struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	MatterID primitive.ObjectID `bson:"matter_id" json:"matter_id"`

	NoteText  string     `bson:"note_text" json:"note_text"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Edited    bool       `bson:"edited" json:"edited"`
	EditedAt  *time.Time `bson:"edited_at,omitempty" json:"edited_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EntityID satisfies syncview.Entity.
func (n Note) EntityID() string { return n.ID.Hex() }
