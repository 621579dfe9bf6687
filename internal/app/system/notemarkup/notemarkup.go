// Package notemarkup renders note text to display HTML.
//
// The markup is deliberately minimal and one-way: a run wrapped in **
// renders bold, and a line whose first non-space rune is the bullet
// glyph "•" renders as a list item with the glyph stripped. Everything
// else is literal text. User input is HTML-escaped before the transform
// and the produced fragment is run through a bluemonday policy, so note
// text can never inject markup of its own.
package notemarkup

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// BulletGlyph is the character that starts a bullet line.
const BulletGlyph = "•"

// boldRe matches a non-greedy **…** run. Unpaired or empty delimiters
// fall through as literal text.
var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// policy allows exactly what the transform emits.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "li", "br")
	return p
}()

// Render converts raw note text to safe display HTML.
func Render(text string) template.HTML {
	escaped := html.EscapeString(text)

	bolded := boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")

	lines := strings.Split(bolded, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, BulletGlyph) {
			lines[i] = "<li>" + strings.TrimSpace(strings.TrimPrefix(trimmed, BulletGlyph)) + "</li>"
		}
	}
	joined := strings.Join(lines, "<br>\n")

	return template.HTML(policy.Sanitize(joined))
}
