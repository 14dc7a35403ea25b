package prompt

import (
	"fmt"
	"strings"
)

// EmailDirective is appended to every email prompt so the model returns the
// email body only, starting at the subject line.
const EmailDirective = "Only write the email content starting with the subject line. Do NOT include any introductory explanation or extra text."

// emailTemplates hold the kind-specific part of the instruction.
// The single %s is replaced with the topic.
var emailTemplates = map[DocumentKind]string{
	ProductPromotion:     "marketing email to promote the product: %s.",
	CollaborationRequest: "email requesting collaboration regarding: %s.",
	ServiceOffering:      "email to offer a service related to: %s.",
	EventInvitation:      "email inviting someone to attend an event called: %s.",
	FollowUp:             "follow-up email regarding the topic: %s.",
	SponsorshipRequest:   "email requesting sponsorship for: %s.",
	FeedbackRequest:      "email requesting feedback or a review for: %s.",
}

const fallbackEmailTemplate = "email about: %s."

// BuildEmail returns the instruction for generating an email of the given kind.
// The topic must be non-empty; callers validate it before building.
func BuildEmail(topic string, kind DocumentKind, tone Tone) string {
	tmpl, ok := emailTemplates[kind]
	if !ok {
		tmpl = fallbackEmailTemplate
	}

	var b strings.Builder
	b.WriteString("Write a ")
	b.WriteString(strings.ToLower(tone.Label()))
	b.WriteByte(' ')
	fmt.Fprintf(&b, tmpl, topic)
	b.WriteByte(' ')
	b.WriteString(EmailDirective)
	return b.String()
}

// EmailSubject synthesises the subject line used when the draft is sent.
func EmailSubject(kind DocumentKind, topic string) string {
	return kind.Label() + " regarding " + topic
}
