// internal/app/features/notes/types.go
package notes

import (
	"html/template"

	"github.com/dalemusser/matterhub/internal/app/system/notemarkup"
	"github.com/dalemusser/matterhub/internal/app/system/timefmt"
	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/matterhub/internal/domain/models"
)

// noteItem is one rendered note.
type noteItem struct {
	ID       string
	Author   string
	Created  string
	Edited   bool
	EditedAt string
	HTML     template.HTML
}

// ListData is the view model for the note list. It is rendered inline
// on the matter detail page and as the snippet pushed over the live
// socket.
type ListData struct {
	MatterID string
	Loading  bool
	Notes    []noteItem
}

// TabData is the view model for the whole notes tab. The add form posts
// from the detail page, so the tab carries its own CSRF token.
type TabData struct {
	ListData
	CSRFToken string
}

// editData is the view model for the note edit page.
type editData struct {
	viewdata.BaseVM
	MatterID string
	NoteID   string
	Text     string
	Error    template.HTML
}

// deleteConfirmData is the view model for the delete confirmation page.
type deleteConfirmData struct {
	viewdata.BaseVM
	MatterID string
	NoteID   string
	Preview  string
}

func buildList(matterID string, list []models.Note, loading bool) ListData {
	items := make([]noteItem, len(list))
	for i, n := range list {
		author := n.CreatedBy
		if author == "" {
			author = "User"
		}
		item := noteItem{
			ID:      n.ID.Hex(),
			Author:  author,
			Created: timefmt.Relative(n.CreatedAt),
			Edited:  n.Edited,
			HTML:    notemarkup.Render(n.NoteText),
		}
		if n.EditedAt != nil {
			item.EditedAt = timefmt.Relative(*n.EditedAt)
		}
		items[i] = item
	}
	return ListData{MatterID: matterID, Loading: loading, Notes: items}
}
