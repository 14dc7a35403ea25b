package generator

import (
	"github.com/semhq/campaigner/pkg/completion"
	"github.com/semhq/campaigner/pkg/prompt"
)

// GenerationRequest describes one email generation.
type GenerationRequest struct {
	Kind        prompt.DocumentKind
	Tone        prompt.Tone
	Topic       string
	MaxTokens   int
	Temperature float64
}

// NewEmailRequest returns a request with the email token budget and default temperature.
func NewEmailRequest(kind prompt.DocumentKind, tone prompt.Tone, topic string) GenerationRequest {
	return GenerationRequest{
		Kind:        kind,
		Tone:        tone,
		Topic:       topic,
		MaxTokens:   completion.EmailMaxTokens,
		Temperature: completion.DefaultTemperature,
	}
}

// HashtagRequest describes one hashtag and description generation.
type HashtagRequest struct {
	Category string
	Audience prompt.Audience
	Platform prompt.Platform
	Tone     prompt.Tone
	Purpose  prompt.Purpose
}

// EmailDraft is a generated email. Subject is built from the kind and topic,
// never taken from model output. Body is what the model returned and may be edited.
type EmailDraft struct {
	Subject string
	Body    string
	Kind    prompt.DocumentKind
	Topic   string
}

// HashtagDescriptionResult holds a generated description and its hashtag line.
type HashtagDescriptionResult struct {
	Description string
	Hashtags    string
}
