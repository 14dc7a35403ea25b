// Package markdown renders email drafts as HTML previews using goldmark.
// Output is passed through the sanitizer preview policy before it reaches a page.
package markdown
