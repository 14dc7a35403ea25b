package views

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/semhq/campaigner/pkg/prompt"
)

// EmailView is everything the email generator page shows.
type EmailView struct {
	Topic        string
	Kind         prompt.DocumentKind
	Tone         prompt.Tone
	Subject      string
	Body         string
	Recipient    string
	SenderEmail  string
	Preview      template.HTML
	Notice       Notice
	SendNotice   Notice
	CustomSender bool
	// DefaultSender reports whether operator credentials are configured.
	DefaultSender bool
}

type emailData struct {
	EmailView
	Page  Page
	Kinds []Option
	Tones []Option
}

func (v EmailView) data() emailData {
	return emailData{
		EmailView: v,
		Page:      Page{Title: "Email Generator", Active: "email"},
		Kinds:     options(prompt.DocumentKinds(), prompt.DocumentKind.Label, v.Kind),
		Tones:     options(prompt.Tones(), prompt.Tone.Label, v.Tone),
	}
}

// EmailPage renders the full email generator page.
func EmailPage(v EmailView) templ.Component {
	return render("email_page", v.data())
}

// EmailPanel renders the draft and send section swapped in after generation.
func EmailPanel(v EmailView) templ.Component {
	return render("email_panel", v.data())
}

// SendNotice renders the result of a send attempt.
func SendNotice(n Notice) templ.Component {
	return render("send_notice", n)
}

// EmailPreview renders already-sanitised preview HTML.
func EmailPreview(html template.HTML) templ.Component {
	return render("email_preview", html)
}
