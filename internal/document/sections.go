package document

import (
	"strings"
)

// sectionHeadings are the headings a rendered profile document is known to
// carry. A section's body is bounded by its heading and the next known
// heading (or end of document).
var sectionHeadings = []string{
	"Contact",
	"Top Skills",
	"Skills",
	"Languages",
	"Certifications",
	"Honors-Awards",
	"Honors & Awards",
	"Publications",
	"Summary",
	"Experience",
	"Education",
}

// headingDenyList contains section-heading-like tokens that must never be
// mistaken for a person's name by the name-recovery cascade.
var headingDenyList = map[string]bool{
	"top":            true,
	"skills":         true,
	"languages":      true,
	"certifications": true,
	"experience":     true,
	"education":      true,
	"summary":        true,
	"contact":        true,
	"honors":         true,
	"awards":         true,
	"publications":   true,
	"page":           true,
}

// sectionBounds returns the body of the named section: the text between the
// heading and the next known heading, or "" when the heading is absent. The
// heading must sit at the start of a line so that prose mentioning the word
// ("my experience with...") does not open a section.
func sectionBounds(text, heading string) string {
	locate := findHeading
	if !hasLineStructure(text) {
		// Flattened text has no line anchors; fall back to plain search.
		locate = strings.Index
	}

	start := locate(text, heading)
	if start < 0 {
		return ""
	}
	body := text[start+len(heading):]

	end := len(body)
	for _, other := range sectionHeadings {
		if strings.EqualFold(other, heading) {
			continue
		}
		if idx := locate(body, other); idx >= 0 && idx < end {
			end = idx
		}
	}
	return strings.TrimSpace(body[:end])
}

// findHeading locates a heading at the start of a line, matching the whole
// line or a line-leading prefix followed by a break.
func findHeading(text, heading string) int {
	offset := 0
	remaining := text
	for {
		idx := strings.Index(remaining, heading)
		if idx < 0 {
			return -1
		}
		atLineStart := idx == 0 || remaining[idx-1] == '\n'
		afterEnd := idx + len(heading)
		atLineEnd := afterEnd >= len(remaining) || remaining[afterEnd] == '\n'
		if atLineStart && atLineEnd {
			return offset + idx
		}
		offset += idx + len(heading)
		remaining = remaining[idx+len(heading):]
	}
}

// nonEmptyLines splits text on line breaks and drops blank lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// hasLineStructure reports whether the text carries enough line breaks for
// the line-based strategies to be worth trying; flattened text falls back to
// the regex-only paths.
func hasLineStructure(text string) bool {
	return strings.Count(text, "\n") >= 3
}

// isDeniedNameToken reports whether a word is a section-heading-like token.
func isDeniedNameToken(word string) bool {
	return headingDenyList[strings.ToLower(strings.TrimSpace(word))]
}
