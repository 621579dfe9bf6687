// internal/app/features/matters/templates.go
package matters

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "matters",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
