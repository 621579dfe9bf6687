// internal/domain/models/matter.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Matter is the root entity of the domain: one legal case.
//
// NOTE:
//   - Contacts and notes are never embedded; they live in the
//     matter_contacts and matter_notes collections keyed by matter_id.
//   - UpdatedAt drives the dashboard ordering (newest activity first).
type Matter struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	MatterName string             `bson:"matter_name" json:"matter_name"`
	NameCI     string             `bson:"matter_name_ci" json:"matter_name_ci"`

	ContactName string `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	Opponent    string `bson:"opponent,omitempty" json:"opponent,omitempty"`

	Status     string `bson:"status" json:"status"`
	MatterType string `bson:"matter_type,omitempty" json:"matter_type,omitempty"`

	RateType   string   `bson:"matter_rate_type" json:"matter_rate_type"`
	RateAmount *float64 `bson:"matter_rate_amount,omitempty" json:"matter_rate_amount,omitempty"`

	Paid             float64 `bson:"paid" json:"paid"`
	InvoicesDue      float64 `bson:"invoices_due" json:"invoices_due"`
	UnappliedAmount  float64 `bson:"unapplied_amount" json:"unapplied_amount"`
	TrustBalance     float64 `bson:"trust_balance" json:"trust_balance"`
	OperatingBalance float64 `bson:"operating_balance" json:"operating_balance"`
	BillableAmount   float64 `bson:"billable_amount" json:"billable_amount"`

	OpenDate              *time.Time `bson:"open_date,omitempty" json:"open_date,omitempty"`
	CloseDate             *time.Time `bson:"close_date,omitempty" json:"close_date,omitempty"`
	StatuteOfLimitations  *time.Time `bson:"statute_of_limitations_date,omitempty" json:"statute_of_limitations_date,omitempty"`

	OpposingAttorney string   `bson:"opposing_attorney,omitempty" json:"opposing_attorney,omitempty"`
	PropertyAddress  string   `bson:"property_address,omitempty" json:"property_address,omitempty"`
	Tags             []string `bson:"tags" json:"tags"`
	Evergreen        bool     `bson:"evergreen" json:"evergreen"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EntityID satisfies syncview.Entity.
func (m Matter) EntityID() string { return m.ID.Hex() }
