package types

// RawProfile holds the loose textual profile fields as emitted by the source,
// before any normalization. At most one per import.
type RawProfile struct {
	FirstName         string
	LastName          string
	Headline          string
	Summary           string
	GeoLocation       string
	Websites          string
	InstantMessengers string
	TwitterHandles    string
}

// RawPosition is one work position as listed by the source, dates still in
// source format.
type RawPosition struct {
	Company     string
	Title       string
	Description string
	Location    string
	StartedOn   string
	FinishedOn  string
}

// RawEducation is one education entry; DegreeName may combine degree and
// field ("Bachelor of Science, Computer Science").
type RawEducation struct {
	SchoolName string
	DegreeName string
	StartDate  string
	EndDate    string
	Activities string
	Notes      string
}

// RawSkill is a single loose skill name.
type RawSkill struct {
	Name string
}

// RawCertification is one certification row.
type RawCertification struct {
	Name          string
	URL           string
	Authority     string
	StartedOn     string
	FinishedOn    string
	LicenseNumber string
}

// RawLanguage is one spoken language, optionally with a textual proficiency.
type RawLanguage struct {
	Name        string
	Proficiency string
}

// RawEmail is one email address row with its source flags.
type RawEmail struct {
	Address   string
	Confirmed bool
	Primary   bool
}

// ParsedAggregate collects the raw records recovered by one extraction path
// during a single import call. It is never persisted; the assembler consumes
// it and the orchestrator discards it.
type ParsedAggregate struct {
	Profile        *RawProfile
	Positions      []RawPosition
	Education      []RawEducation
	Skills         []RawSkill
	Certifications []RawCertification
	Languages      []RawLanguage
	Emails         []RawEmail
}

// IsEmpty reports whether no record of any kind was recovered.
func (a *ParsedAggregate) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Profile == nil &&
		len(a.Positions) == 0 &&
		len(a.Education) == 0 &&
		len(a.Skills) == 0 &&
		len(a.Certifications) == 0 &&
		len(a.Languages) == 0 &&
		len(a.Emails) == 0
}

// HasPrimarySections reports whether the aggregate carries any of the four
// primary record kinds (profile, positions, education, skills). Absence of
// all four is the fatal empty-result condition.
func (a *ParsedAggregate) HasPrimarySections() bool {
	if a == nil {
		return false
	}
	return a.Profile != nil || len(a.Positions) > 0 || len(a.Education) > 0 || len(a.Skills) > 0
}
