package mock

import "github.com/fwojciec/earnings"

var (
	_ earnings.Converter        = (*Converter)(nil)
	_ earnings.MarkdownRenderer = (*MarkdownRenderer)(nil)
)

// Converter is a mock implementation of earnings.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// MarkdownRenderer is a mock implementation of earnings.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
