// internal/app/features/contacts/types.go
package contacts

import (
	"html/template"

	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
)

// Card is one contact in the tab's card grid.
type Card struct {
	ID             string
	Name           string
	RelationToCase string
	Email          string
	Phone          string
	Address        string
	Description    string
	IsPlaintiff    bool
	IsDefendant    bool
}

// CardsData is the view model for the card grid. It is rendered inline
// on the matter detail page and as the snippet pushed over the live
// socket.
type CardsData struct {
	MatterID string
	Loading  bool
	Cards    []Card
}

// TabData is the view model for the whole contacts tab.
type TabData struct {
	CardsData
}

// contactForm echoes the add/edit form fields on validation failure.
type contactForm struct {
	Name           string
	RelationToCase string
	Email          string
	Phone          string
	Address        string
	Description    string
	IsPlaintiff    bool
	IsDefendant    bool
}

// formData is the view model for the add/edit form page.
type formData struct {
	viewdata.BaseVM
	MatterID  string
	EditingID string // empty for create
	Form      contactForm
	Error     template.HTML
}

// deleteConfirmData is the view model for the delete confirmation page.
type deleteConfirmData struct {
	viewdata.BaseVM
	MatterID  string
	ContactID string
	Name      string
}

func buildCards(matterID string, contacts []models.Contact, loading bool) CardsData {
	sorted := SortContacts(contacts)
	cards := make([]Card, len(sorted))
	for i, c := range sorted {
		cards[i] = Card{
			ID:             c.ID.Hex(),
			Name:           c.Name,
			RelationToCase: c.RelationToCase,
			Email:          c.Email,
			Phone:          c.Phone,
			Address:        c.Address,
			Description:    c.Description,
			IsPlaintiff:    c.IsPlaintiff,
			IsDefendant:    c.IsDefendant,
		}
	}
	return CardsData{MatterID: matterID, Loading: loading, Cards: cards}
}
