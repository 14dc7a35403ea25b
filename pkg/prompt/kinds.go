package prompt

import "strings"

// DocumentKind is the category of email being generated.
type DocumentKind string

const (
	ProductPromotion     DocumentKind = "product_promotion"
	CollaborationRequest DocumentKind = "collaboration_request"
	ServiceOffering      DocumentKind = "service_offering"
	EventInvitation      DocumentKind = "event_invitation"
	FollowUp             DocumentKind = "follow_up"
	SponsorshipRequest   DocumentKind = "sponsorship_request"
	FeedbackRequest      DocumentKind = "feedback_request"
)

var documentKindLabels = map[DocumentKind]string{
	ProductPromotion:     "Product Promotion",
	CollaborationRequest: "Collaboration Request",
	ServiceOffering:      "Service Offering",
	EventInvitation:      "Event Invitation",
	FollowUp:             "Follow-up Message",
	SponsorshipRequest:   "Sponsorship Request",
	FeedbackRequest:      "Feedback/Review Request",
}

// DocumentKinds lists every known document kind in display order.
func DocumentKinds() []DocumentKind {
	return []DocumentKind{
		ProductPromotion,
		CollaborationRequest,
		ServiceOffering,
		EventInvitation,
		FollowUp,
		SponsorshipRequest,
		FeedbackRequest,
	}
}

// Label returns the display name. Unknown kinds are returned as-is.
func (k DocumentKind) Label() string {
	if l, ok := documentKindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Known reports whether k is one of the predefined kinds.
func (k DocumentKind) Known() bool {
	_, ok := documentKindLabels[k]
	return ok
}

// ParseDocumentKind maps a slug or label to a DocumentKind.
// Unrecognised values are kept verbatim so BuildEmail can apply its fallback.
func ParseDocumentKind(s string) DocumentKind {
	return parseEnum(s, DocumentKinds(), DocumentKind.Label)
}

// Tone is the voice of the generated text.
type Tone string

const (
	Formal   Tone = "formal"
	Friendly Tone = "friendly"
	Casual   Tone = "casual"
)

// Tones lists every tone in display order.
func Tones() []Tone {
	return []Tone{Formal, Friendly, Casual}
}

// Label returns the capitalised display name.
func (t Tone) Label() string {
	switch t {
	case Formal:
		return "Formal"
	case Friendly:
		return "Friendly"
	case Casual:
		return "Casual"
	}
	return string(t)
}

// ParseTone maps a slug or label to a Tone.
func ParseTone(s string) Tone {
	return parseEnum(s, Tones(), Tone.Label)
}

// Audience is the target audience of a social-media post.
type Audience string

const (
	Teenagers          Audience = "teenagers"
	YoungAdults        Audience = "young_adults"
	Professionals      Audience = "professionals"
	FitnessEnthusiasts Audience = "fitness_enthusiasts"
	BeautyLovers       Audience = "beauty_lovers"
	TechGeeks          Audience = "tech_geeks"
	GeneralAudience    Audience = "general_audience"
)

var audienceLabels = map[Audience]string{
	Teenagers:          "Teenagers",
	YoungAdults:        "Young Adults",
	Professionals:      "Professionals",
	FitnessEnthusiasts: "Fitness Enthusiasts",
	BeautyLovers:       "Beauty Lovers",
	TechGeeks:          "Tech Geeks",
	GeneralAudience:    "General Audience",
}

// Audiences lists every audience in display order.
func Audiences() []Audience {
	return []Audience{Teenagers, YoungAdults, Professionals, FitnessEnthusiasts, BeautyLovers, TechGeeks, GeneralAudience}
}

func (a Audience) Label() string {
	if l, ok := audienceLabels[a]; ok {
		return l
	}
	return string(a)
}

// ParseAudience maps a slug or label to an Audience.
func ParseAudience(s string) Audience {
	return parseEnum(s, Audiences(), Audience.Label)
}

// Platform is the social network a post targets.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
)

// Platforms lists every platform in display order.
func Platforms() []Platform {
	return []Platform{Instagram, Twitter, LinkedIn}
}

func (p Platform) Label() string {
	switch p {
	case Instagram:
		return "Instagram"
	case Twitter:
		return "Twitter"
	case LinkedIn:
		return "LinkedIn"
	}
	return string(p)
}

// ParsePlatform maps a slug or label to a Platform.
func ParsePlatform(s string) Platform {
	return parseEnum(s, Platforms(), Platform.Label)
}

// Purpose is what a social-media post is meant to achieve.
type Purpose string

const (
	PromoteProduct Purpose = "promote_product"
	AnnounceEvent  Purpose = "announce_event"
	ShareTips      Purpose = "share_tips"
	RaiseAwareness Purpose = "raise_awareness"
)

// Purposes lists every purpose in display order.
func Purposes() []Purpose {
	return []Purpose{PromoteProduct, AnnounceEvent, ShareTips, RaiseAwareness}
}

func (p Purpose) Label() string {
	switch p {
	case PromoteProduct:
		return "Promote Product"
	case AnnounceEvent:
		return "Announce Event"
	case ShareTips:
		return "Share Tips"
	case RaiseAwareness:
		return "Raise Awareness"
	}
	return string(p)
}

// ParsePurpose maps a slug or label to a Purpose.
func ParsePurpose(s string) Purpose {
	return parseEnum(s, Purposes(), Purpose.Label)
}

// parseEnum matches s against slugs first, then labels (case-insensitive).
func parseEnum[E ~string](s string, all []E, label func(E) string) E {
	s = strings.TrimSpace(s)
	for _, e := range all {
		if string(e) == s {
			return e
		}
	}
	for _, e := range all {
		if strings.EqualFold(label(e), s) {
			return e
		}
	}
	return E(s)
}
