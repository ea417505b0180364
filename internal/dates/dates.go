// Package dates normalizes the textual date formats found in profile exports
// into canonical YYYY-MM strings.
package dates

import (
	"fmt"
	"regexp"
	"strings"
)

// monthNumbers maps lower-cased month names and three-letter abbreviations to
// their two-digit month number.
var monthNumbers = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

var (
	canonicalRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	monthYearRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
	yearOnlyRe  = regexp.MustCompile(`^(\d{4})$`)
)

// Normalize converts a textual date of unknown format into canonical YYYY-MM.
// Recognized, in priority order: already-canonical "YYYY-MM", "<Month> YYYY"
// (full name or three-letter abbreviation, case-insensitive), and bare "YYYY"
// (defaulted to January). Unrecognized input yields ""; Normalize never
// returns an error, since downstream logic treats an empty date as open-ended
// or unknown rather than invalid.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if canonicalRe.MatchString(s) {
		return s
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if num, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%s", m[2], num)
		}
		return ""
	}

	if m := yearOnlyRe.FindStringSubmatch(s); m != nil {
		return m[1] + "-01"
	}

	return ""
}
