package document

import (
	"regexp"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

// topSkillCount is how many entries the renderer puts in the "Top Skills"
// sidebar section.
const topSkillCount = 3

var (
	hyphenatedTermRe     = regexp.MustCompile(`\b([A-Z][a-zA-Z]+-[A-Za-z][a-zA-Z]+)\b`)
	capitalizedTwoWordRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+ [A-Z][a-zA-Z]+)\b`)
	capitalizedWordRe    = regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\b`)

	languageProficiencyRe = regexp.MustCompile(`([A-Z][a-zA-Z]+)\s*\(([^)]+)\)`)

	// certBoundaryRe marks segment starts in flattened certification text:
	// course-platform prefixes ("Learning React") and technology-name colon
	// labels ("AWS:").
	certBoundaryRe = regexp.MustCompile(`Learning\s+[A-Z0-9]|\b[A-Z][A-Za-z0-9+#.]*:`)
)

// recoverSkills extracts the "Top Skills" section. With line structure each
// line is one skill; flattened text goes through a positional cascade that
// extracts exactly topSkillCount candidates: hyphenated two-word terms
// first, then remaining capitalized two-word terms, then remaining single
// capitalized words.
func recoverSkills(text string) []types.RawSkill {
	section := sectionBounds(text, "Top Skills")
	if section == "" {
		section = sectionBounds(text, "Skills")
	}
	if section == "" {
		return nil
	}

	if hasLineStructure(text) {
		var out []types.RawSkill
		for _, line := range nonEmptyLines(section) {
			out = append(out, types.RawSkill{Name: line})
			if len(out) == topSkillCount {
				break
			}
		}
		return out
	}

	return skillsFromFlatText(section)
}

func skillsFromFlatText(section string) []types.RawSkill {
	var names []string
	remaining := section

	take := func(re *regexp.Regexp) {
		for _, m := range re.FindAllString(remaining, -1) {
			if len(names) == topSkillCount {
				return
			}
			names = append(names, m)
			remaining = strings.Replace(remaining, m, " ", 1)
		}
	}

	take(hyphenatedTermRe)
	take(capitalizedTwoWordRe)
	take(capitalizedWordRe)

	out := make([]types.RawSkill, 0, len(names))
	for _, n := range names {
		out = append(out, types.RawSkill{Name: n})
	}
	return out
}

// recoverLanguages extracts "<Name> (<Proficiency>)" pairs from the bounded
// Languages section, falling back to a newline split when no parenthetical
// proficiency is present.
func recoverLanguages(text string) []types.RawLanguage {
	section := sectionBounds(text, "Languages")
	if section == "" {
		return nil
	}

	if ms := languageProficiencyRe.FindAllStringSubmatch(section, -1); len(ms) > 0 {
		out := make([]types.RawLanguage, 0, len(ms))
		for _, m := range ms {
			out = append(out, types.RawLanguage{
				Name:        strings.TrimSpace(m[1]),
				Proficiency: strings.TrimSpace(m[2]),
			})
		}
		return out
	}

	var out []types.RawLanguage
	for _, line := range nonEmptyLines(section) {
		out = append(out, types.RawLanguage{Name: line})
	}
	return out
}

// recoverCertifications splits the bounded Certifications section on line
// breaks when available; flattened text is segmented at recognized
// course-platform and technology-label boundaries.
func recoverCertifications(text string) []types.RawCertification {
	section := sectionBounds(text, "Certifications")
	if section == "" {
		return nil
	}

	var names []string
	if hasLineStructure(text) {
		names = nonEmptyLines(section)
	} else {
		names = splitFlatCertifications(section)
	}

	out := make([]types.RawCertification, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, types.RawCertification{Name: n})
		}
	}
	return out
}

func splitFlatCertifications(section string) []string {
	locs := certBoundaryRe.FindAllStringIndex(section, -1)
	if len(locs) == 0 {
		return []string{section}
	}

	var parts []string
	if head := strings.TrimSpace(section[:locs[0][0]]); head != "" {
		parts = append(parts, head)
	}
	for i, loc := range locs {
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, strings.TrimSpace(section[loc[0]:end]))
	}
	return parts
}
