// Package types provides type definitions for the canonical resume schema and
// the intermediate records produced by the import paths.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeContent is the canonical resume schema that all import paths
// converge to. Sections are optional; an import that recovers only part of a
// profile still produces a valid (partial) ResumeContent.
type ResumeContent struct {
	PersonalInfo   *PersonalInfo   `json:"personalInfo,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         *Skills         `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Links          []Link          `json:"links,omitempty"`
}

// PersonalInfo holds identity and contact fields. Name is the display form;
// sources that carry split first/last names fill all three.
type PersonalInfo struct {
	Name          string `json:"name,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	LastNameFirst bool   `json:"lastNameFirst,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Location      string `json:"location,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

// Experience is a single work position. Dates are canonical YYYY-MM strings
// or empty when unknown; Current is set when no end date was recovered.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Education is a single education entry.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
	Honors      []string `json:"honors,omitempty"`
}

// Skills partitions skill names into display buckets. Languages holds
// spoken-language display strings ("Name (Proficiency)"), not programming
// languages.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Tools     []string `json:"tools,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// Certification is a single certification or license.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Link is a typed external link (profile, repository, portfolio, ...).
type Link struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// IsEmpty reports whether no section carries any data. An import whose
// content is empty is reported as a failure by the orchestrator.
func (c *ResumeContent) IsEmpty() bool {
	if c == nil {
		return true
	}
	if c.PersonalInfo != nil && *c.PersonalInfo != (PersonalInfo{}) {
		return false
	}
	if len(c.Experience) > 0 || len(c.Education) > 0 || len(c.Certifications) > 0 || len(c.Links) > 0 {
		return false
	}
	if c.Skills != nil {
		if len(c.Skills.Technical) > 0 || len(c.Skills.Languages) > 0 ||
			len(c.Skills.Tools) > 0 || len(c.Skills.Soft) > 0 {
			return false
		}
	}
	return true
}

// ImportResult is the uniform return value of every import invocation.
// Success implies Data is present and non-empty in at least one section;
// failure implies Data is absent. Warnings are informational and never block
// success.
type ImportResult struct {
	Success  bool           `json:"success"`
	Data     *ResumeContent `json:"data,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Error    string         `json:"error,omitempty"`
}
