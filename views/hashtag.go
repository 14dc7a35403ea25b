package views

import (
	"github.com/a-h/templ"

	"github.com/semhq/campaigner/pkg/prompt"
)

// HashtagView is everything the hashtag generator page shows.
type HashtagView struct {
	Category    string
	Audience    prompt.Audience
	Platform    prompt.Platform
	Tone        prompt.Tone
	Purpose     prompt.Purpose
	Description string
	Hashtags    string
	Notice      Notice
}

type hashtagData struct {
	HashtagView
	Page      Page
	Audiences []Option
	Platforms []Option
	Tones     []Option
	Purposes  []Option
}

func (v HashtagView) data() hashtagData {
	return hashtagData{
		HashtagView: v,
		Page:        Page{Title: "Hashtag & Description Generator", Active: "hashtags"},
		Audiences:   options(prompt.Audiences(), prompt.Audience.Label, v.Audience),
		Platforms:   options(prompt.Platforms(), prompt.Platform.Label, v.Platform),
		Tones:       options(prompt.Tones(), prompt.Tone.Label, v.Tone),
		Purposes:    options(prompt.Purposes(), prompt.Purpose.Label, v.Purpose),
	}
}

// HashtagPage renders the full hashtag generator page.
func HashtagPage(v HashtagView) templ.Component {
	return render("hashtag_page", v.data())
}

// HashtagPanel renders the notice and generated output.
func HashtagPanel(v HashtagView) templ.Component {
	return render("hashtag_panel", v.data())
}
