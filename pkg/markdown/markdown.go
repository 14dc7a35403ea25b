package markdown

import (
	"bytes"
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/semhq/campaigner/pkg/sanitizer"
)

// ErrRender is returned when the markdown source cannot be converted.
var ErrRender = errors.New("markdown: failed to render")

// Renderer converts a draft body to sanitised HTML for previewing.
// Single newlines are kept as line breaks since email bodies rely on them.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer. It is safe for concurrent use.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts src to HTML and strips anything outside the preview policy.
// Raw HTML in src is never passed through.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", errors.Join(ErrRender, err)
	}
	return sanitizer.SanitizeHTML(buf.String()), nil
}
