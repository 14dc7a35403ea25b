package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/pkg/prompt"
)

func TestBuildEmail_AllKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range prompt.DocumentKinds() {
		for _, tone := range prompt.Tones() {
			t.Run(string(kind)+"/"+string(tone), func(t *testing.T) {
				t.Parallel()

				got := prompt.BuildEmail("Acme Soap", kind, tone)

				assert.True(t, strings.HasPrefix(got, "Write a "+strings.ToLower(tone.Label())+" "))
				assert.Contains(t, got, "Acme Soap")
				assert.True(t, strings.HasSuffix(got, prompt.EmailDirective))
				assert.NotContains(t, got, "email about:")
			})
		}
	}
}

func TestBuildEmail_Templates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind prompt.DocumentKind
		want string
	}{
		{prompt.ProductPromotion, "Write a formal marketing email to promote the product: X. "},
		{prompt.CollaborationRequest, "Write a formal email requesting collaboration regarding: X. "},
		{prompt.ServiceOffering, "Write a formal email to offer a service related to: X. "},
		{prompt.EventInvitation, "Write a formal email inviting someone to attend an event called: X. "},
		{prompt.FollowUp, "Write a formal follow-up email regarding the topic: X. "},
		{prompt.SponsorshipRequest, "Write a formal email requesting sponsorship for: X. "},
		{prompt.FeedbackRequest, "Write a formal email requesting feedback or a review for: X. "},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want+prompt.EmailDirective, prompt.BuildEmail("X", tt.kind, prompt.Formal))
		})
	}
}

func TestBuildEmail_UnknownKindFallsBack(t *testing.T) {
	t.Parallel()

	got := prompt.BuildEmail("Spring Sale", prompt.DocumentKind("newsletter"), prompt.Casual)
	require.Equal(t, "Write a casual email about: Spring Sale. "+prompt.EmailDirective, got)
}

func TestBuildEmail_Idempotent(t *testing.T) {
	t.Parallel()

	a := prompt.BuildEmail("Launch", prompt.EventInvitation, prompt.Friendly)
	b := prompt.BuildEmail("Launch", prompt.EventInvitation, prompt.Friendly)
	assert.Equal(t, a, b)
}

func TestBuildHashtag(t *testing.T) {
	t.Parallel()

	for _, audience := range prompt.Audiences() {
		for _, platform := range prompt.Platforms() {
			for _, purpose := range prompt.Purposes() {
				got := prompt.BuildHashtag("skincare", audience, platform, prompt.Friendly, purpose)

				assert.Contains(t, got, "skincare")
				assert.Contains(t, got, audience.Label())
				assert.Contains(t, got, platform.Label())
				assert.Contains(t, got, strings.ToLower(purpose.Label()))
				assert.Contains(t, got, "Separate both with a blank line.")
			}
		}
	}
}

func TestBuildHashtag_Exact(t *testing.T) {
	t.Parallel()

	got := prompt.BuildHashtag("gadgets", prompt.TechGeeks, prompt.Twitter, prompt.Casual, prompt.AnnounceEvent)
	want := "Generate a casual social media description and relevant hashtags for announce event about gadgets, " +
		"targeting Tech Geeks on Twitter. Return the description first, then a list of hashtags separated by commas. " +
		"Separate both with a blank line."
	require.Equal(t, want, got)
	require.Equal(t, got, prompt.BuildHashtag("gadgets", prompt.TechGeeks, prompt.Twitter, prompt.Casual, prompt.AnnounceEvent))
}

func TestEmailSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Product Promotion regarding Acme Soap", prompt.EmailSubject(prompt.ProductPromotion, "Acme Soap"))
	assert.Equal(t, "Feedback/Review Request regarding App", prompt.EmailSubject(prompt.FeedbackRequest, "App"))
	assert.Equal(t, "newsletter regarding App", prompt.EmailSubject("newsletter", "App"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, prompt.FollowUp, prompt.ParseDocumentKind("follow_up"))
	assert.Equal(t, prompt.FollowUp, prompt.ParseDocumentKind("Follow-up Message"))
	assert.Equal(t, prompt.DocumentKind("other"), prompt.ParseDocumentKind(" other "))
	assert.False(t, prompt.ParseDocumentKind("other").Known())

	assert.Equal(t, prompt.Friendly, prompt.ParseTone("Friendly"))
	assert.Equal(t, prompt.YoungAdults, prompt.ParseAudience("young adults"))
	assert.Equal(t, prompt.LinkedIn, prompt.ParsePlatform("LinkedIn"))
	assert.Equal(t, prompt.RaiseAwareness, prompt.ParsePurpose("raise_awareness"))
}
