package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer names accepted by NewRenderer.
const (
	RendererSubset   = "subset"
	RendererGoldmark = "goldmark"
)

// Renderer converts plan markdown into an HTML fragment.
type Renderer interface {
	Render(markdown string) (string, error)
	Name() string
}

// NewRenderer returns the renderer registered under name. An empty name
// selects the subset renderer.
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case "", RendererSubset:
		return SubsetRenderer{}, nil
	case RendererGoldmark:
		return NewGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q: must be one of subset, goldmark", name)
	}
}

// SubsetRenderer renders with FormatPlan.
type SubsetRenderer struct{}

func (SubsetRenderer) Render(markdown string) (string, error) { return FormatPlan(markdown), nil }
func (SubsetRenderer) Name() string                            { return RendererSubset }

// GoldmarkRenderer renders full GitHub-flavoured markdown. Raw HTML in the
// input is dropped.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM tables, task lists
// and highlighted code blocks.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

func (r *GoldmarkRenderer) Name() string { return RendererGoldmark }
