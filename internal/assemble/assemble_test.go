package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-importer/internal/types"
)

func fullAggregate() *types.ParsedAggregate {
	return &types.ParsedAggregate{
		Profile: &types.RawProfile{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Summary:     "Engineer.",
			GeoLocation: "London, UK",
			Websites:    "[PERSONAL:https://ada.dev,OTHER:https://github.com/ada]",
		},
		Positions: []types.RawPosition{
			{Company: "Acme", Title: "Engineer", StartedOn: "Jan 2020", FinishedOn: "", Description: "Built things.\n• Shipped v2\n• Cut costs"},
			{Company: "Initech", Title: "Developer", StartedOn: "2015", FinishedOn: "Jan 2020"},
		},
		Education: []types.RawEducation{
			{SchoolName: "MIT", DegreeName: "BSc, Computer Science", StartDate: "2011", EndDate: "2015", Activities: "Chess club\nDebate team"},
		},
		Skills: []types.RawSkill{{Name: "Go"}, {Name: "Docker"}, {Name: "Leadership"}},
		Languages: []types.RawLanguage{
			{Name: "English", Proficiency: "Native or bilingual proficiency"},
			{Name: "French"},
		},
		Certifications: []types.RawCertification{
			{Name: "CKA", Authority: "CNCF", StartedOn: "Jan 2021", LicenseNumber: "abc-123", URL: "https://example.com/cka"},
		},
		Emails: []types.RawEmail{
			{Address: "old@example.com", Confirmed: true},
			{Address: "ada@example.com", Confirmed: true, Primary: true},
		},
	}
}

func TestBuildFullAggregate(t *testing.T) {
	res := Build(fullAggregate())
	content := res.Content

	require.NotNil(t, content.PersonalInfo)
	assert.Equal(t, "Ada", content.PersonalInfo.FirstName)
	assert.Equal(t, "ada@example.com", content.PersonalInfo.Email, "primary email wins")
	assert.Equal(t, "London, UK", content.PersonalInfo.Location)

	require.Len(t, content.Experience, 2)
	first := content.Experience[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2020-01", first.StartDate)
	assert.True(t, first.Current, "no end date means current")
	assert.Equal(t, "Built things.", first.Description)
	assert.Equal(t, []string{"Shipped v2", "Cut costs"}, first.Highlights)
	second := content.Experience[1]
	assert.Equal(t, "2015-01", second.StartDate)
	assert.Equal(t, "2020-01", second.EndDate)
	assert.False(t, second.Current)
	assert.NotEqual(t, first.ID, second.ID, "ids must be unique")

	require.Len(t, content.Education, 1)
	edu := content.Education[0]
	assert.Equal(t, "MIT", edu.Institution)
	assert.Equal(t, "BSc", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, []string{"Chess club", "Debate team"}, edu.Honors)

	require.NotNil(t, content.Skills)
	assert.Equal(t, []string{"Go"}, content.Skills.Technical)
	assert.Equal(t, []string{"Docker"}, content.Skills.Tools)
	assert.Equal(t, []string{"Leadership"}, content.Skills.Soft)
	assert.Equal(t, []string{"English (Native or bilingual proficiency)", "French"}, content.Skills.Languages)

	require.Len(t, content.Certifications, 1)
	cert := content.Certifications[0]
	assert.Equal(t, "CNCF", cert.Issuer)
	assert.Equal(t, "2021-01", cert.Date)
	assert.Equal(t, "abc-123", cert.CredentialID)

	require.Len(t, content.Links, 2)
	var typesSeen []string
	for _, l := range content.Links {
		typesSeen = append(typesSeen, l.Type)
	}
	assert.Contains(t, typesSeen, "website")
	assert.Contains(t, typesSeen, "github")

	assert.Empty(t, res.Warnings)
}

func TestBuildNoNameWarnsButSucceeds(t *testing.T) {
	agg := &types.ParsedAggregate{
		Skills: []types.RawSkill{{Name: "Go"}},
	}

	res := Build(agg)

	require.NotNil(t, res.Content.Skills)
	assert.False(t, res.Content.IsEmpty())

	joined := strings.Join(res.Warnings, "; ")
	assert.Contains(t, joined, "no name found")
}

func TestBuildEmptyAggregate(t *testing.T) {
	res := Build(&types.ParsedAggregate{})

	assert.True(t, res.Content.IsEmpty())
	assert.NotEmpty(t, res.Warnings)
}

func TestBuildNilAggregate(t *testing.T) {
	res := Build(nil)
	assert.True(t, res.Content.IsEmpty())
}

func TestSelectEmail(t *testing.T) {
	tests := []struct {
		name     string
		emails   []types.RawEmail
		expected string
	}{
		{"Primary preferred", []types.RawEmail{{Address: "a@x.com"}, {Address: "b@x.com", Primary: true}}, "b@x.com"},
		{"Confirmed when no primary", []types.RawEmail{{Address: "a@x.com"}, {Address: "b@x.com", Confirmed: true}}, "b@x.com"},
		{"First as fallback", []types.RawEmail{{Address: "a@x.com"}, {Address: "b@x.com"}}, "a@x.com"},
		{"None", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selectEmail(tt.emails))
		})
	}
}

func TestSplitDegreeField(t *testing.T) {
	degree, field := splitDegreeField("Bachelor of Science, Computer Science")
	assert.Equal(t, "Bachelor of Science", degree)
	assert.Equal(t, "Computer Science", field)

	degree, field = splitDegreeField("MBA")
	assert.Equal(t, "MBA", degree)
	assert.Empty(t, field)

	degree, field = splitDegreeField("")
	assert.Empty(t, degree)
	assert.Empty(t, field)
}

func TestProficiencyLevel(t *testing.T) {
	tests := []struct {
		proficiency string
		level       int
	}{
		{"Native or bilingual proficiency", 5},
		{"Full professional proficiency", 5},
		{"Professional working proficiency", 4},
		{"Limited working proficiency", 3},
		{"Elementary proficiency", 2},
		{"something else", 1},
		{"", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, ProficiencyLevel(tt.proficiency), "proficiency %q", tt.proficiency)
	}
}

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		url      string
		label    string
		linkType string
	}{
		{"https://www.linkedin.com/in/ada", "LinkedIn", "linkedin"},
		{"https://github.com/ada", "GitHub", "github"},
		{"https://gitlab.com/ada", "GitLab", "github"},
		{"https://twitter.com/ada", "Twitter", "social"},
		{"https://dribbble.com/ada", "Dribbble", "portfolio"},
		{"https://ada.dev", "Website", "website"},
	}

	for _, tt := range tests {
		label, typ := ClassifyLink(tt.url)
		assert.Equal(t, tt.label, label, tt.url)
		assert.Equal(t, tt.linkType, typ, tt.url)
	}
}
