package document

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

var (
	locationTripleRe = regexp.MustCompile(`(?m)^([A-Z][a-zA-Z .'\-]+,\s*[A-Z][a-zA-Z .'\-]+,\s*[A-Z][a-zA-Z .'\-]+)$`)

	// Only the professional-network and code-hosting links are recovered
	// from a document; certificate and course URLs sit too close to other
	// text to extract reliably.
	profileLinkRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(linkedin\.com/in/[\w\-%.]+|github\.com/[\w\-]+)`)
)

// Extract recovers a ParsedAggregate from extracted document text on a
// best-effort basis. Every stage degrades gracefully; a stage that finds
// nothing leaves its records absent. When verbose is set, intermediate
// results are logged to support debugging heuristic regressions; logging
// never affects the outcome.
func Extract(text string, verbose bool) *types.ParsedAggregate {
	agg := &types.ParsedAggregate{}
	if strings.TrimSpace(text) == "" {
		return agg
	}

	agg.Profile = recoverProfile(text, verbose)

	agg.Positions = recoverExperience(text, verbose)
	if verbose {
		log.Printf("[VERBOSE] document: %d positions", len(agg.Positions))
	}

	agg.Education = recoverEducation(text)
	if verbose {
		log.Printf("[VERBOSE] document: %d education entries", len(agg.Education))
	}

	agg.Skills = recoverSkills(text)
	agg.Languages = recoverLanguages(text)
	agg.Certifications = filterCertifications(recoverCertifications(text), agg.Profile)
	if verbose {
		log.Printf("[VERBOSE] document: %d skills, %d languages, %d certifications",
			len(agg.Skills), len(agg.Languages), len(agg.Certifications))
	}

	if m := emailRe.FindString(text); m != "" {
		agg.Emails = append(agg.Emails, types.RawEmail{Address: m, Primary: true})
	}

	return agg
}

// ExtractFile extracts text from document bytes and runs the heuristic
// cascade over it.
func ExtractFile(filename string, data []byte, verbose bool) (*types.ParsedAggregate, error) {
	text, err := ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("[VERBOSE] document: extracted %d chars, %d lines",
			len(text), strings.Count(text, "\n")+1)
	}
	return Extract(text, verbose), nil
}

// recoverProfile assembles the raw profile record: name via the strategy
// cascade, then headline, location, summary, and the narrow link set.
func recoverProfile(text string, verbose bool) *types.RawProfile {
	profile := &types.RawProfile{}

	if cand, ok := recoverName(text); ok {
		profile.FirstName = cand.First
		profile.LastName = cand.Last
		if verbose {
			log.Printf("[VERBOSE] document: recovered name %q %q", cand.First, cand.Last)
		}
		profile.Headline = headlineAfterName(text, cand)
	} else if verbose {
		log.Printf("[VERBOSE] document: no name recovered")
	}

	if m := locationTripleRe.FindString(text); m != "" {
		profile.GeoLocation = strings.TrimSpace(m)
	}

	profile.Summary = sectionBounds(text, "Summary")

	links := profileLinkRe.FindAllString(text, -1)
	if len(links) > 0 {
		seen := make(map[string]bool, len(links))
		var kept []string
		for _, l := range links {
			if !seen[l] {
				seen[l] = true
				kept = append(kept, l)
			}
		}
		profile.Websites = strings.Join(kept, ",")
	}

	if *profile == (types.RawProfile{}) {
		return nil
	}
	return profile
}

// filterCertifications drops section spill-over: the sidebar renders the
// certification list directly above the owner's name block, so the name,
// headline, location, and contact lines can leak into the bounded section.
func filterCertifications(certs []types.RawCertification, profile *types.RawProfile) []types.RawCertification {
	if len(certs) == 0 {
		return certs
	}
	var kept []types.RawCertification
	for _, c := range certs {
		if strings.Contains(c.Name, "@") || locationTripleRe.MatchString(c.Name) {
			continue
		}
		if profile != nil && profile.FirstName != "" {
			pair := profile.FirstName + " " + profile.LastName
			if c.Name == pair || c.Name == profile.Headline {
				continue
			}
		}
		kept = append(kept, c)
	}
	return kept
}

// headlineAfterName returns the line directly following the name line, which
// the renderer uses for the profile headline. Structural lines (headings,
// locations) are rejected.
func headlineAfterName(text string, cand nameCandidate) string {
	pair := cand.First + " " + cand.Last
	idx := strings.Index(text, pair)
	if idx < 0 {
		return ""
	}
	lines := nonEmptyLines(text[idx+len(pair):])
	if len(lines) == 0 {
		return ""
	}
	line := lines[0]
	if isDeniedNameToken(line) || locationTripleRe.MatchString(line) {
		return ""
	}
	return line
}
