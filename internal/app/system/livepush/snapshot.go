// internal/app/system/livepush/snapshot.go
package livepush

import (
	"bytes"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Snapshot renders a registered template snippet to bytes so it can be
// pushed over a websocket instead of written to a response.
func Snapshot(name string, data any) []byte {
	var buf snippetBuffer
	templates.RenderSnippet(&buf, name, data)
	return buf.Bytes()
}

// snippetBuffer adapts a byte buffer to the response writer the
// template engine renders into.
type snippetBuffer struct {
	bytes.Buffer
	header http.Header
}

func (b *snippetBuffer) Header() http.Header {
	if b.header == nil {
		b.header = http.Header{}
	}
	return b.header
}

func (b *snippetBuffer) WriteHeader(int) {}
