package document

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

// minStructuredPositions is the confidence floor for the line-based pass;
// below it the flattened regex fallback is attempted as well.
const minStructuredPositions = 3

var (
	datePart = `(?:[A-Za-z]+ \d{4}|\d{4})`

	// dateRangeLineRe matches a whole line of the form
	// "January 2020 - March 2022" or "2018 - Present".
	dateRangeLineRe = regexp.MustCompile(`(?i)^(` + datePart + `)\s*[-–—]\s*(` + datePart + `|Present)\s*(?:\(.*\))?$`)

	// durationLineRe matches a whole line of the form "2 years 3 months";
	// the renderer emits it under a company with multiple roles, so the
	// preceding line is a company name.
	durationLineRe = regexp.MustCompile(`(?i)^\(?\d+\s+years?(?:\s+\d+\s+months?)?\)?$|^\(?\d+\s+months?\)?$`)

	// locationLineRe matches a "City, Region" style line.
	locationLineRe = regexp.MustCompile(`^[A-Z][a-zA-Z .'\-]+(?:,\s*[A-Z][a-zA-Z .'\-]+)+$`)

	titleKeywordRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join(titleKeywords, "|") + `)\b`)

	// Flattened-text fallback patterns.
	// The trailing word group is lazy so month names stay with the date.
	flatTitleDateRe = regexp.MustCompile(
		`((?:[A-Z][\w'\-]*\s+)*(?:` + strings.Join(titleKeywords, "|") + `)(?:\s+[A-Z][\w'\-]*)*?)\s+(` + datePart + `)\s*[-–—]\s*(` + datePart + `|Present)`)
	flatCompanyRe = regexp.MustCompile(
		`([A-Z][\w&.'\-]*(?:\s+[A-Z][\w&.'\-]*)*)\s+\d+\s+(?:years?|months?)`)
)

// lineKind classifies one line of the bounded experience section.
type lineKind int

const (
	kindOther lineKind = iota
	kindDate
	kindDuration
	kindLocation
	kindTitle
)

func classifyExperienceLine(line string, prev lineKind) lineKind {
	switch {
	case dateRangeLineRe.MatchString(line):
		return kindDate
	case durationLineRe.MatchString(line):
		return kindDuration
	case prev == kindDate && locationLineRe.MatchString(line):
		// A location line only ever directly follows a date line.
		return kindLocation
	case titleKeywordRe.MatchString(line) && !locationLineRe.MatchString(line):
		return kindTitle
	default:
		return kindOther
	}
}

// recoverExperience runs the structured line pass and, when it recovers
// fewer than minStructuredPositions, the flattened regex fallback; whichever
// pass finds more positions wins.
func recoverExperience(text string, verbose bool) []types.RawPosition {
	var structured []types.RawPosition
	if hasLineStructure(text) {
		structured = experienceFromLines(text)
	}
	if verbose {
		log.Printf("[VERBOSE] experience: structured pass found %d positions", len(structured))
	}
	if len(structured) >= minStructuredPositions {
		return structured
	}

	fallback := experienceFromFlatText(flatten(text))
	if verbose {
		log.Printf("[VERBOSE] experience: flattened fallback found %d positions", len(fallback))
	}
	if len(fallback) > len(structured) {
		return fallback
	}
	return structured
}

// experienceFromLines classifies each line of the bounded Experience section
// and opens a new position at every date-range line. The nearest preceding
// title line supplies the position title; the nearest preceding plain line
// (or the company inferred from a duration line) supplies the company.
func experienceFromLines(text string) []types.RawPosition {
	section := sectionBounds(text, "Experience")
	if section == "" {
		return nil
	}

	lines := nonEmptyLines(section)
	var positions []types.RawPosition

	title := ""
	durationCompany := "" // company inferred from a duration line
	durationIdx := -1
	lastOther := "" // most recent non-structural line
	lastOtherIdx := -1
	prev := kindOther

	for i, line := range lines {
		kind := classifyExperienceLine(line, prev)
		switch kind {
		case kindDate:
			m := dateRangeLineRe.FindStringSubmatch(line)
			pos := types.RawPosition{
				Title:     title,
				StartedOn: strings.TrimSpace(m[1]),
			}
			if !strings.EqualFold(m[2], "Present") {
				pos.FinishedOn = strings.TrimSpace(m[2])
			}
			// A company seen more recently wins over an older
			// duration-inferred one.
			if durationIdx > lastOtherIdx {
				pos.Company = durationCompany
			} else {
				pos.Company = lastOther
			}
			if pos.Company != "" || pos.Title != "" {
				positions = append(positions, pos)
			}
			title = ""
		case kindDuration:
			// The line above a duration line is a company name.
			if lastOther != "" {
				durationCompany = lastOther
				durationIdx = i
			}
		case kindTitle:
			title = line
		case kindLocation:
			if len(positions) > 0 && positions[len(positions)-1].Location == "" {
				positions[len(positions)-1].Location = line
			}
		default:
			lastOther = line
			lastOtherIdx = i
		}
		prev = kind
	}

	return positions
}

// experienceFromFlatText scans line-break-free text for
// "<title> <date> - <date>" shapes and pairs each with the nearest preceding
// company-like token: a capitalized phrase immediately followed by a
// duration expression.
func experienceFromFlatText(flat string) []types.RawPosition {
	titleMatches := flatTitleDateRe.FindAllStringSubmatchIndex(flat, -1)
	if len(titleMatches) == 0 {
		return nil
	}
	companyMatches := flatCompanyRe.FindAllStringSubmatchIndex(flat, -1)

	var positions []types.RawPosition
	for _, tm := range titleMatches {
		title := strings.TrimSpace(flat[tm[2]:tm[3]])
		start := flat[tm[4]:tm[5]]
		end := flat[tm[6]:tm[7]]

		company := ""
		for _, cm := range companyMatches {
			if cm[0] >= tm[0] {
				break
			}
			company = trimStructuralPrefix(strings.TrimSpace(flat[cm[2]:cm[3]]))
		}

		pos := types.RawPosition{
			Company:   company,
			Title:     title,
			StartedOn: start,
		}
		if !strings.EqualFold(end, "Present") {
			pos.FinishedOn = end
		}
		positions = append(positions, pos)
	}
	return positions
}

// trimStructuralPrefix drops leading heading-like or date-range tokens that
// the greedy company phrase can pick up from adjacent text ("Experience Acme
// Widgets", "Present Initech Systems").
func trimStructuralPrefix(phrase string) string {
	words := strings.Fields(phrase)
	for len(words) > 0 && (isDeniedNameToken(words[0]) || strings.EqualFold(words[0], "Present")) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// flatten removes line structure so flattened-path regexes see the document
// the way a naive text extractor would.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
