package document

import (
	"regexp"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

// educationRe matches "<institution> <degree?, field?> · (YYYY - YYYY)"
// shapes. The institution phrase must contain an education word; degree and
// field ride in one phrase and are split on the first comma downstream.
var educationRe = regexp.MustCompile(
	`([A-Z][\w.'&\- ]*(?:University|College|Institute|School|Academy|Polytechnic)[\w.'&\- ]*?)` +
		`[\s,·]*` +
		`((?:Bachelor|Master|Doctor|Associate|B\.?[AS]c?\.?|M\.?[AS]c?\.?|MBA|PhD|Ph\.D\.?|Diploma|Certificate)[^·(\n]*)?` +
		`[·\s]*\((\d{4})\s*[-–—]\s*(\d{4})\)`)

// recoverEducation matches education entries anywhere in the text; entries
// render identically whether or not line breaks survived extraction, so a
// single regex pass covers both paths.
func recoverEducation(text string) []types.RawEducation {
	var out []types.RawEducation
	for _, m := range educationRe.FindAllStringSubmatch(text, -1) {
		school := strings.TrimSpace(strings.Trim(m[1], " ,·"))
		degree := strings.TrimSpace(strings.Trim(m[2], " ,·"))
		if school == "" {
			continue
		}
		out = append(out, types.RawEducation{
			SchoolName: school,
			DegreeName: degree,
			StartDate:  m[3],
			EndDate:    m[4],
		})
	}
	return out
}
