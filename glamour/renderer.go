// Package glamour renders Markdown for display in a terminal.
package glamour

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/earnings"
)

var _ earnings.MarkdownRenderer = (*Renderer)(nil)

// Default renderer settings.
const (
	DefaultStyle = "dark"
	DefaultWidth = 80
)

// Renderer wraps a glamour terminal renderer.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer using a standard glamour style such as
// "dark", "light", "dracula" or "notty".
func NewRenderer(style string, width int) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width <= 0 {
		width = DefaultWidth
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render styles Markdown for terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	out, err := r.term.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
