package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/pkg/markdown"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := markdown.New()

	tests := []struct {
		name       string
		src        string
		contains   []string
		notContain []string
	}{
		{
			name:     "paragraphs and emphasis",
			src:      "Hi **team**,\n\nSee you there.",
			contains: []string{"<strong>team</strong>", "<p>See you there.</p>"},
		},
		{
			name:     "line breaks kept",
			src:      "Best,\nTeam SEM",
			contains: []string{"<br", "Team SEM"},
		},
		{
			name:       "raw html dropped",
			src:        "Hello <script>alert(1)</script> world",
			contains:   []string{"Hello", "world"},
			notContain: []string{"<script", "alert(1)</script>"},
		},
		{
			name:     "links get nofollow",
			src:      "Visit https://www.sem.com today",
			contains: []string{`href="https://www.sem.com"`, "nofollow"},
		},
		{
			name:       "javascript links stripped",
			src:        "[click](javascript:alert(1))",
			contains:   []string{"click"},
			notContain: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := r.Render(tt.src)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContain {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_Empty(t *testing.T) {
	t.Parallel()

	out, err := markdown.New().Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
