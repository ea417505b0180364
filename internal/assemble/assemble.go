// Package assemble maps a ParsedAggregate, produced by either extraction
// path, into the canonical resume schema. Missing or thin sections become
// warnings, never failures; deciding whether the overall import failed is
// the orchestrator's job.
package assemble

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/profile-importer/internal/dates"
	"github.com/jonathan/profile-importer/internal/segment"
	"github.com/jonathan/profile-importer/internal/skills"
	"github.com/jonathan/profile-importer/internal/types"
)

var urlRe = regexp.MustCompile(`https?://[^\s,\]]+|(?:www\.)?[\w\-]+\.[a-z]{2,}(?:/[^\s,\]]*)?`)

// Result carries the assembled content and the warnings accumulated while
// mapping it.
type Result struct {
	Content  *types.ResumeContent
	Warnings []string
}

// Build converts the raw aggregate into canonical resume content.
func Build(agg *types.ParsedAggregate) Result {
	res := Result{Content: &types.ResumeContent{}}
	if agg == nil {
		agg = &types.ParsedAggregate{}
	}

	res.buildPersonalInfo(agg)
	res.buildExperience(agg)
	res.buildEducation(agg)
	res.buildSkills(agg)
	res.buildCertifications(agg)
	res.buildLinks(agg)

	return res
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) buildPersonalInfo(agg *types.ParsedAggregate) {
	info := &types.PersonalInfo{}

	if agg.Profile != nil {
		info.FirstName = agg.Profile.FirstName
		info.LastName = agg.Profile.LastName
		info.Location = agg.Profile.GeoLocation
		info.Summary = agg.Profile.Summary
	}

	info.Email = selectEmail(agg.Emails)

	if info.FirstName == "" && info.LastName == "" {
		r.warnf("no name found in the imported data; fill in personal info manually")
	}

	if *info != (types.PersonalInfo{}) {
		r.Content.PersonalInfo = info
	}
}

// selectEmail prefers an address flagged primary, then one flagged
// confirmed, then the first available.
func selectEmail(emails []types.RawEmail) string {
	for _, e := range emails {
		if e.Primary {
			return e.Address
		}
	}
	for _, e := range emails {
		if e.Confirmed {
			return e.Address
		}
	}
	if len(emails) > 0 {
		return emails[0].Address
	}
	return ""
}

func (r *Result) buildExperience(agg *types.ParsedAggregate) {
	if len(agg.Positions) == 0 {
		r.warnf("no work experience found")
		return
	}
	for _, p := range agg.Positions {
		seg := segment.Split(p.Description)
		exp := types.Experience{
			ID:          uuid.NewString(),
			Company:     p.Company,
			Position:    p.Title,
			StartDate:   dates.Normalize(p.StartedOn),
			EndDate:     dates.Normalize(p.FinishedOn),
			Description: seg.Description,
			Highlights:  seg.Highlights,
		}
		// A position with no end date is still held.
		exp.Current = strings.TrimSpace(p.FinishedOn) == ""
		r.Content.Experience = append(r.Content.Experience, exp)
	}
}

func (r *Result) buildEducation(agg *types.ParsedAggregate) {
	if len(agg.Education) == 0 {
		r.warnf("no education entries found")
		return
	}
	for _, e := range agg.Education {
		degree, field := splitDegreeField(e.DegreeName)
		edu := types.Education{
			ID:          uuid.NewString(),
			Institution: e.SchoolName,
			Degree:      degree,
			Field:       field,
			StartDate:   dates.Normalize(e.StartDate),
			EndDate:     dates.Normalize(e.EndDate),
			Current:     strings.TrimSpace(e.EndDate) == "",
			Honors:      honorsList(e.Activities),
		}
		r.Content.Education = append(r.Content.Education, edu)
	}
}

// splitDegreeField splits a combined "Bachelor of Science, Computer Science"
// string on the first comma; a string without a comma is all degree.
func splitDegreeField(combined string) (degree, field string) {
	combined = strings.TrimSpace(combined)
	if combined == "" {
		return "", ""
	}
	if idx := strings.Index(combined, ","); idx >= 0 {
		return strings.TrimSpace(combined[:idx]), strings.TrimSpace(combined[idx+1:])
	}
	return combined, ""
}

func honorsList(activities string) []string {
	var honors []string
	for _, line := range strings.Split(activities, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			honors = append(honors, line)
		}
	}
	return honors
}

func (r *Result) buildSkills(agg *types.ParsedAggregate) {
	if len(agg.Skills) == 0 && len(agg.Languages) == 0 {
		r.warnf("no skills found")
		return
	}

	names := make([]string, 0, len(agg.Skills))
	for _, s := range agg.Skills {
		names = append(names, s.Name)
	}
	part := skills.Categorize(names)

	out := &types.Skills{
		Technical: part.Technical,
		Tools:     part.Tools,
		Soft:      part.Soft,
	}
	for _, lang := range agg.Languages {
		out.Languages = append(out.Languages, LanguageDisplay(lang))
	}
	r.Content.Skills = out
}

// LanguageDisplay renders a raw language as its display string:
// "Name (Proficiency)" when a proficiency is present, bare name otherwise.
func LanguageDisplay(lang types.RawLanguage) string {
	if strings.TrimSpace(lang.Proficiency) == "" {
		return lang.Name
	}
	return fmt.Sprintf("%s (%s)", lang.Name, lang.Proficiency)
}

// ProficiencyLevel maps a textual language proficiency onto a 1-5 ordinal
// scale for callers that need a numeric comparison. The canonical schema
// keeps the display string; this scale is a side channel.
func ProficiencyLevel(proficiency string) int {
	p := strings.ToLower(proficiency)
	switch {
	case strings.Contains(p, "native") || strings.Contains(p, "full professional"):
		return 5
	case strings.Contains(p, "professional working"):
		return 4
	case strings.Contains(p, "limited"):
		return 3
	case strings.Contains(p, "elementary"):
		return 2
	default:
		return 1
	}
}

func (r *Result) buildCertifications(agg *types.ParsedAggregate) {
	for _, c := range agg.Certifications {
		cert := types.Certification{
			ID:           uuid.NewString(),
			Name:         c.Name,
			Issuer:       c.Authority,
			Date:         dates.Normalize(c.StartedOn),
			ExpiryDate:   dates.Normalize(c.FinishedOn),
			CredentialID: c.LicenseNumber,
			URL:          c.URL,
		}
		r.Content.Certifications = append(r.Content.Certifications, cert)
	}
}

func (r *Result) buildLinks(agg *types.ParsedAggregate) {
	if agg.Profile == nil {
		return
	}
	raw := agg.Profile.Websites
	if agg.Profile.TwitterHandles != "" {
		raw += "," + agg.Profile.TwitterHandles
	}
	if agg.Profile.InstantMessengers != "" {
		raw += "," + agg.Profile.InstantMessengers
	}

	seen := make(map[string]bool)
	for _, m := range urlRe.FindAllString(raw, -1) {
		u := strings.TrimSpace(m)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		label, linkType := ClassifyLink(u)
		r.Content.Links = append(r.Content.Links, types.Link{
			ID:    uuid.NewString(),
			Label: label,
			URL:   u,
			Type:  linkType,
		})
	}
}

// knownDomains maps domain substrings to link label and type. First match
// wins; unrecognized domains become a generic website link.
var knownDomains = []struct {
	substr string
	label  string
	typ    string
}{
	{"linkedin.com", "LinkedIn", "linkedin"},
	{"github.com", "GitHub", "github"},
	{"gitlab.com", "GitLab", "github"},
	{"bitbucket.org", "Bitbucket", "github"},
	{"twitter.com", "Twitter", "social"},
	{"instagram.com", "Instagram", "social"},
	{"facebook.com", "Facebook", "social"},
	{"dribbble.com", "Dribbble", "portfolio"},
	{"behance.net", "Behance", "portfolio"},
	{"figma.com", "Figma", "portfolio"},
}

// ClassifyLink assigns a label and type to a URL by substring match against
// the known domain set.
func ClassifyLink(u string) (label, linkType string) {
	lower := strings.ToLower(u)
	for _, d := range knownDomains {
		if strings.Contains(lower, d.substr) {
			return d.label, d.typ
		}
	}
	return "Website", "website"
}
