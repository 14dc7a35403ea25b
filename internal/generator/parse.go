package generator

import "strings"

// ParseHashtagResult splits completion text at the first blank line.
// The part before it is the description, the rest the hashtags.
// Without a blank line the whole text is the description. Only the text as
// a whole is trimmed; the two halves are kept as the model wrote them.
func ParseHashtagResult(text string) HashtagDescriptionResult {
	description, hashtags, _ := strings.Cut(strings.TrimSpace(text), "\n\n")
	return HashtagDescriptionResult{Description: description, Hashtags: hashtags}
}
