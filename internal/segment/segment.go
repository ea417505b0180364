// Package segment splits free-text position descriptions into prose and
// bullet-point highlights.
package segment

import (
	"regexp"
	"strings"
)

// bulletRe matches a leading bullet marker: •, -, *, or a numbered form like
// "1." or "2)".
var bulletRe = regexp.MustCompile(`^\s*(?:[•\-*]|\d+[.)])\s*`)

// Result holds the prose portion of a description and its bullet highlights
// in source order.
type Result struct {
	Description string
	Highlights  []string
}

// Split segments free text on line breaks. Lines carrying a bullet marker
// have the marker stripped and become highlights; remaining non-empty lines
// are joined with spaces into the description. Empty input yields both fields
// empty, never nil leaking into the canonical schema.
func Split(text string) Result {
	res := Result{Highlights: []string{}}
	if strings.TrimSpace(text) == "" {
		return res
	}

	var prose []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if loc := bulletRe.FindStringIndex(trimmed); loc != nil {
			highlight := strings.TrimSpace(trimmed[loc[1]:])
			if highlight != "" {
				res.Highlights = append(res.Highlights, highlight)
			}
			continue
		}
		prose = append(prose, trimmed)
	}

	res.Description = strings.Join(prose, " ")
	return res
}
