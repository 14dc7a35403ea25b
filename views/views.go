package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Static returns the embedded stylesheet tree, rooted above "static".
func Static() fs.FS {
	return staticFS
}

// render wraps a named template as a templ component.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Page carries the layout fields shared by every full page.
type Page struct {
	Title  string
	Active string
}

// NoticeLevel selects the notice styling.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is an inline status message. The zero value renders nothing.
type Notice struct {
	Level NoticeLevel
	Text  string
}

func Success(text string) Notice { return Notice{Level: NoticeSuccess, Text: text} }
func Warning(text string) Notice { return Notice{Level: NoticeWarning, Text: text} }
func Failure(text string) Notice { return Notice{Level: NoticeError, Text: text} }

// Option is one entry of a select box.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// options builds select entries from an enum list, marking the selected value.
// The first entry is selected when nothing matches.
func options[E ~string](all []E, label func(E) string, selected E) []Option {
	out := make([]Option, 0, len(all))
	found := false
	for _, v := range all {
		sel := v == selected
		found = found || sel
		out = append(out, Option{Value: string(v), Label: label(v), Selected: sel})
	}
	if !found && len(out) > 0 {
		out[0].Selected = true
	}
	return out
}

type errorData struct {
	Page    Page
	Title   string
	Message string
	Code    int
}

// ErrorPage renders a full error page.
func ErrorPage(code int, title, message string) templ.Component {
	return render("error_page", errorData{
		Page:    Page{Title: title},
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// ErrorFragment renders an error notice for htmx swaps.
func ErrorFragment(message string) templ.Component {
	return render("error_fragment", errorData{Message: message})
}
