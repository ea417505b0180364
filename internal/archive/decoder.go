// Package archive decodes a profile data-export archive (a ZIP of delimited
// tables) into the raw record lists consumed by the content assembler.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

// ErrInvalidArchive is returned when the archive bytes cannot be opened as a
// ZIP. This is the only fatal decode condition; missing tables and bad rows
// degrade to warnings.
var ErrInvalidArchive = errors.New("archive cannot be opened")

// table identifies one known export table by a case-insensitive substring of
// its entry name.
type table struct {
	match  string
	decode func(rows []row, agg *types.ParsedAggregate)
}

// row is one decoded CSV record with header-indexed access. Header lookup is
// by lower-cased column name so provider column reordering does not break
// decoding.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) getBool(column string) bool {
	v := strings.ToLower(r.get(column))
	return v == "yes" || v == "true" || v == "1"
}

// knownTables lists the export tables relevant to resume content, most
// specific match first.
var knownTables = []table{
	{match: "positions", decode: decodePositions},
	{match: "education", decode: decodeEducation},
	{match: "skills", decode: decodeSkills},
	{match: "certifications", decode: decodeCertifications},
	{match: "languages", decode: decodeLanguages},
	{match: "email addresses", decode: decodeEmails},
	{match: "profile", decode: decodeProfile},
}

// Decode opens the archive and decodes every recognized table into a
// ParsedAggregate. Missing tables simply leave their aggregate field absent;
// individual rows that cannot be decoded are skipped with a warning. Only a
// structurally invalid archive is an error.
func Decode(data []byte, verbose bool) (*types.ParsedAggregate, []string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	agg := &types.ParsedAggregate{}
	var warnings []string

	for _, f := range zr.File {
		name := strings.ToLower(path.Base(f.Name))
		if !strings.HasSuffix(name, ".csv") {
			continue
		}
		tbl := matchTable(name)
		if tbl == nil {
			continue
		}

		rows, err := readRows(f)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not read table %q: %v", f.Name, err))
			continue
		}
		if verbose {
			log.Printf("[VERBOSE] table %q: %d rows", f.Name, len(rows))
		}
		tbl.decode(rows, agg)
	}

	return agg, warnings, nil
}

// matchTable finds the known table whose match string is contained in the
// lower-cased entry name. "profile" is deliberately checked last so that a
// hypothetical "Profile Positions" style name resolves to the more specific
// table first.
func matchTable(lowerName string) *table {
	for i := range knownTables {
		if strings.Contains(lowerName, knownTables[i].match) {
			return &knownTables[i]
		}
	}
	return nil
}

// readRows decodes one CSV entry into header-indexed rows. Rows whose shape
// the CSV reader rejects are skipped; the table survives with the rows that
// parsed.
func readRows(f *zip.File) ([]row, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry: %w", err)
	}
	defer func() { _ = rc.Close() }()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows []row
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("skipping malformed row in %s: %v", f.Name, err)
			continue
		}
		rows = append(rows, row{index: index, fields: fields})
	}
	return rows, nil
}

func decodeProfile(rows []row, agg *types.ParsedAggregate) {
	if len(rows) == 0 {
		return
	}
	// At most one profile per export; extra rows are provider noise.
	r := rows[0]
	agg.Profile = &types.RawProfile{
		FirstName:         r.get("first name"),
		LastName:          r.get("last name"),
		Headline:          r.get("headline"),
		Summary:           r.get("summary"),
		GeoLocation:       r.get("geo location"),
		Websites:          r.get("websites"),
		InstantMessengers: r.get("instant messengers"),
		TwitterHandles:    r.get("twitter handles"),
	}
}

func decodePositions(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		p := types.RawPosition{
			Company:     r.get("company name"),
			Title:       r.get("title"),
			Description: r.get("description"),
			Location:    r.get("location"),
			StartedOn:   r.get("started on"),
			FinishedOn:  r.get("finished on"),
		}
		if p.Company == "" && p.Title == "" {
			continue
		}
		agg.Positions = append(agg.Positions, p)
	}
}

func decodeEducation(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		e := types.RawEducation{
			SchoolName: r.get("school name"),
			DegreeName: r.get("degree name"),
			StartDate:  r.get("start date"),
			EndDate:    r.get("end date"),
			Activities: r.get("activities"),
			Notes:      r.get("notes"),
		}
		if e.SchoolName == "" && e.DegreeName == "" {
			continue
		}
		agg.Education = append(agg.Education, e)
	}
}

func decodeSkills(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		if name := r.get("name"); name != "" {
			agg.Skills = append(agg.Skills, types.RawSkill{Name: name})
		}
	}
}

func decodeCertifications(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		c := types.RawCertification{
			Name:          r.get("name"),
			URL:           r.get("url"),
			Authority:     r.get("authority"),
			StartedOn:     r.get("started on"),
			FinishedOn:    r.get("finished on"),
			LicenseNumber: r.get("license number"),
		}
		if c.Name == "" {
			continue
		}
		agg.Certifications = append(agg.Certifications, c)
	}
}

func decodeLanguages(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		l := types.RawLanguage{
			Name:        r.get("name"),
			Proficiency: r.get("proficiency"),
		}
		if l.Name == "" {
			continue
		}
		agg.Languages = append(agg.Languages, l)
	}
}

func decodeEmails(rows []row, agg *types.ParsedAggregate) {
	for _, r := range rows {
		e := types.RawEmail{
			Address:   r.get("email address"),
			Confirmed: r.getBool("confirmed"),
			Primary:   r.getBool("primary"),
		}
		if e.Address == "" {
			continue
		}
		agg.Emails = append(agg.Emails, e)
	}
}
