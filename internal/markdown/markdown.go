// Package markdown renders raw Markdown notes to HTML.
package markdown

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer is initialized once and reused. The goldmark configuration never
// changes and the Markdown instance is safe to share; each Convert call
// creates its own parse state.
var (
	renderer goldmark.Markdown
	once     sync.Once
)

func getRenderer() goldmark.Markdown {
	once.Do(func() {
		renderer = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return renderer
}

// Render converts raw Markdown to HTML. It is pure and total: empty input
// yields empty output, and malformed Markdown still renders as text.
func Render(input string) string {
	if input == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := getRenderer().Convert([]byte(input), &buf); err != nil {
		// goldmark only fails on writer errors, which bytes.Buffer
		// never produces.
		return ""
	}
	return buf.String()
}
