package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	previewPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Covers what goldmark emits for a plain-text email rendered as markdown.
		previewPolicy = bluemonday.NewPolicy()
		previewPolicy.AllowStandardURLs()
		previewPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		previewPolicy.AllowAttrs("href").OnElements("a")
		previewPolicy.RequireNoFollowOnLinks(true)
		previewPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// StripHTML removes every tag and returns plain text.
// Entities escaped by the policy are decoded again so "&" and quotes survive.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeHTML keeps the formatting tags used by rendered previews and drops
// everything else, including scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return previewPolicy.Sanitize(s)
}

// Line cleans single-line form input: tags are stripped and runs of
// whitespace, newlines included, collapse to one space.
func Line(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}

// Multiline normalises textarea input: CRLF and CR become LF and surrounding
// whitespace is trimmed. Markup is left as typed.
func Multiline(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
