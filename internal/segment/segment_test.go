package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantDesc       string
		wantHighlights []string
	}{
		{
			name:           "Prose only",
			input:          "Led the platform team.\nShipped the v2 API.",
			wantDesc:       "Led the platform team. Shipped the v2 API.",
			wantHighlights: []string{},
		},
		{
			name:           "Dot bullets",
			input:          "Team lead.\n• Cut latency by 40%\n• Migrated to Kubernetes",
			wantDesc:       "Team lead.",
			wantHighlights: []string{"Cut latency by 40%", "Migrated to Kubernetes"},
		},
		{
			name:           "Mixed marker styles",
			input:          "- first\n* second\n1. third\n2) fourth",
			wantDesc:       "",
			wantHighlights: []string{"first", "second", "third", "fourth"},
		},
		{
			name:           "Blank lines dropped",
			input:          "Intro.\n\n\n- only bullet\n",
			wantDesc:       "Intro.",
			wantHighlights: []string{"only bullet"},
		},
		{
			name:           "Marker with no content dropped",
			input:          "Intro.\n- \n- real",
			wantDesc:       "Intro.",
			wantHighlights: []string{"real"},
		},
		{
			name:           "Empty input",
			input:          "",
			wantDesc:       "",
			wantHighlights: []string{},
		},
		{
			name:           "Whitespace only",
			input:          "  \n \t ",
			wantDesc:       "",
			wantHighlights: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.Equal(t, tt.wantHighlights, got.Highlights)
		})
	}
}

// Rejoining highlights with bullet markers and re-segmenting must preserve
// the highlight list and its order.
func TestSplitRoundTrip(t *testing.T) {
	highlights := []string{"Built the ingestion service", "Mentored four engineers", "On-call rotation lead"}

	rejoined := "• " + strings.Join(highlights, "\n• ")
	got := Split(rejoined)

	assert.Empty(t, got.Description)
	assert.Equal(t, highlights, got.Highlights)
}
