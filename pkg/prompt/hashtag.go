package prompt

import (
	"fmt"
	"strings"
)

// BuildHashtag returns the instruction for generating a social-media
// description followed by a blank line and comma-separated hashtags.
func BuildHashtag(category string, audience Audience, platform Platform, tone Tone, purpose Purpose) string {
	return fmt.Sprintf(
		"Generate a %s social media description and relevant hashtags for %s about %s, targeting %s on %s. "+
			"Return the description first, then a list of hashtags separated by commas. Separate both with a blank line.",
		strings.ToLower(tone.Label()),
		strings.ToLower(purpose.Label()),
		category,
		audience.Label(),
		platform.Label(),
	)
}
