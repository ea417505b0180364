package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeOne(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Bucket
	}{
		{"Language keyword", "Python", BucketTechnical},
		{"Short keyword word boundary", "git", BucketTechnical},
		{"Short keyword inside phrase", "Git workflows", BucketTechnical},
		{"Tool keyword", "Docker", BucketTool},
		{"Tool inside phrase", "Kubernetes administration", BucketTool},
		{"Soft keyword", "Team Leadership", BucketSoft},
		{"Unmatched defaults to technical", "Quantum Basket Weaving", BucketTechnical},
		{"AI word boundary", "AI research", BucketTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeOne(tt.input))
		})
	}
}

// "digital" must not match the short keyword "git" by substring; "digital
// marketing" lands in technical only through the default rule, and "git"
// itself matches on a word boundary.
func TestCategorizeShortKeywordBoundary(t *testing.T) {
	p := Categorize([]string{"git", "digital marketing"})

	assert.Contains(t, p.Technical, "git")
	assert.False(t, matches("digital marketing", technicalKeywords),
		"no technical keyword may match digital marketing")
	assert.False(t, matches("digital", technicalKeywords))
}

// "c++" and "c#" end in symbols with no regexp word boundary after them, so
// they need the hand-rolled boundary class to match at all.
func TestCategorizeSymbolSuffixedKeywords(t *testing.T) {
	assert.True(t, matches("c++", technicalKeywords))
	assert.True(t, matches("embedded c++ development", technicalKeywords))
	assert.True(t, matches("c#", technicalKeywords))
	assert.True(t, matches("c# and .net", technicalKeywords))
	assert.False(t, matches("going concern analysis", shortOnly(technicalKeywords)),
		"short keyword 'go' must not fire inside 'going'")
}

// shortOnly filters a keyword list down to its boundary-matched entries so a
// test can probe the short-keyword path without longer substrings firing.
func shortOnly(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if len(kw) <= shortKeywordLen {
			out = append(out, kw)
		}
	}
	return out
}

func TestCategorizeDeterministicAndOrdered(t *testing.T) {
	input := []string{"Go", "Docker", "Leadership", "Terraform", "Public Speaking", "GraphQL"}

	first := Categorize(input)
	second := Categorize(input)

	assert.Equal(t, first, second, "identical input must yield identical partition")
	assert.Equal(t, []string{"Go", "GraphQL"}, first.Technical)
	assert.Equal(t, []string{"Docker", "Terraform"}, first.Tools)
	assert.Equal(t, []string{"Leadership", "Public Speaking"}, first.Soft)
}

func TestCategorizeSkipsBlankNames(t *testing.T) {
	p := Categorize([]string{"", "  ", "Go"})

	assert.Equal(t, []string{"Go"}, p.Technical)
	assert.Empty(t, p.Tools)
	assert.Empty(t, p.Soft)
}
