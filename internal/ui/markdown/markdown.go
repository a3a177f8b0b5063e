// Package markdown renders lesson text for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Render converts markdown to styled terminal output wrapped at width.
// On renderer failure the raw text is returned so a bad lesson never
// blanks the screen.
func Render(text string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
