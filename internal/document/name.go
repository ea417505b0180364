package document

import (
	"regexp"
	"strings"
)

// titleKeywords are seniority/function words that commonly follow a person's
// name in a rendered profile header.
var titleKeywords = []string{
	"Senior", "Junior", "Lead", "Principal", "Staff", "Chief", "Head",
	"Software", "Engineer", "Developer", "Architect", "Manager", "Director",
	"Consultant", "Analyst", "Designer", "Scientist", "Specialist",
	"Founder", "President", "Officer", "Student", "Intern", "Freelance",
}

var (
	capitalizedPairRe = regexp.MustCompile(`([A-Z][a-zA-Z'\-]+)\s+([A-Z][a-zA-Z'\-]+)`)

	// nameBeforeTitleRe: a capitalized word pair immediately followed by a
	// title keyword ("Jane Doe Senior Engineer ...").
	nameBeforeTitleRe = regexp.MustCompile(
		`([A-Z][a-zA-Z'\-]+)\s+([A-Z][a-zA-Z'\-]+)\s+(?:` + strings.Join(titleKeywords, "|") + `)\b`)

	// nameAfterBreakRe: a name following a section-break marker (a run of
	// underscores or dashes the renderer uses between the sidebar and body).
	nameAfterBreakRe = regexp.MustCompile(`(?:_{3,}|-{4,}|={3,})\s*\n?\s*([A-Z][a-zA-Z'\-]+)\s+([A-Z][a-zA-Z'\-]+)`)

	// nameBeforeLocationRe: a name followed by a "City, Region, Country"
	// pattern.
	nameBeforeLocationRe = regexp.MustCompile(
		`([A-Z][a-zA-Z'\-]+)\s+([A-Z][a-zA-Z'\-]+)\s*\n?\s*[A-Z][a-zA-Z .'\-]+,\s*[A-Z][a-zA-Z .'\-]+,\s*[A-Z][a-zA-Z .'\-]+`)

	emailRe = regexp.MustCompile(`([a-zA-Z0-9._%+\-]+)@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

// nameCandidate is a recovered first/last name pair.
type nameCandidate struct {
	First string
	Last  string
}

// nameStrategy is one independently-testable recovery attempt. Strategies
// are tried in order; the first to return ok wins.
type nameStrategy func(text string) (nameCandidate, bool)

var nameStrategies = []nameStrategy{
	nameBeforeTitle,
	nameAfterSectionBreak,
	nameBeforeLocation,
	nameAfterHonorsHeading,
	nameFromEmail,
}

// recoverName runs the strategy cascade over the document text.
func recoverName(text string) (nameCandidate, bool) {
	for _, strategy := range nameStrategies {
		if cand, ok := strategy(text); ok {
			return cand, true
		}
	}
	return nameCandidate{}, false
}

// acceptPair filters out candidates whose words collide with section-heading
// tokens ("Top Skills" must never become a name).
func acceptPair(first, last string) (nameCandidate, bool) {
	if isDeniedNameToken(first) || isDeniedNameToken(last) {
		return nameCandidate{}, false
	}
	return nameCandidate{First: first, Last: last}, true
}

func nameBeforeTitle(text string) (nameCandidate, bool) {
	for _, m := range nameBeforeTitleRe.FindAllStringSubmatch(text, -1) {
		if cand, ok := acceptPair(m[1], m[2]); ok {
			return cand, true
		}
	}
	return nameCandidate{}, false
}

func nameAfterSectionBreak(text string) (nameCandidate, bool) {
	for _, m := range nameAfterBreakRe.FindAllStringSubmatch(text, -1) {
		if cand, ok := acceptPair(m[1], m[2]); ok {
			return cand, true
		}
	}
	return nameCandidate{}, false
}

func nameBeforeLocation(text string) (nameCandidate, bool) {
	for _, m := range nameBeforeLocationRe.FindAllStringSubmatch(text, -1) {
		if cand, ok := acceptPair(m[1], m[2]); ok {
			return cand, true
		}
	}
	return nameCandidate{}, false
}

// nameAfterHonorsHeading looks for a capitalized word pair on its own line
// directly after an honors/awards section heading; the profile renderer
// repeats the owner's name there on continuation pages.
func nameAfterHonorsHeading(text string) (nameCandidate, bool) {
	for _, heading := range []string{"Honors-Awards", "Honors & Awards"} {
		idx := findHeading(text, heading)
		if idx < 0 {
			continue
		}
		for _, line := range nonEmptyLines(text[idx+len(heading):]) {
			m := capitalizedPairRe.FindStringSubmatch(line)
			if m == nil || m[0] != line {
				continue
			}
			if cand, ok := acceptPair(m[1], m[2]); ok {
				return cand, true
			}
		}
	}
	return nameCandidate{}, false
}

// nameFromEmail infers a name from the local part of a discovered email
// address and cross-checks it against a capitalized word pair appearing in
// the document, so that shared mailboxes ("info@", "jobs@") are rejected.
func nameFromEmail(text string) (nameCandidate, bool) {
	m := emailRe.FindStringSubmatch(text)
	if m == nil {
		return nameCandidate{}, false
	}

	parts := strings.FieldsFunc(m[1], func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) < 2 {
		return nameCandidate{}, false
	}
	first := capitalizeWord(parts[0])
	last := capitalizeWord(parts[len(parts)-1])
	if len(first) < 2 || len(last) < 2 {
		return nameCandidate{}, false
	}

	// Cross-check: the pair must actually occur in the text.
	pair := first + " " + last
	if !strings.Contains(text, pair) {
		return nameCandidate{}, false
	}
	return acceptPair(first, last)
}

func capitalizeWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
