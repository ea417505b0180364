// Package importer orchestrates profile imports: it selects the input mode,
// drives the matching extraction path, assembles the canonical content, and
// always returns a structured ImportResult. No error, internal or external,
// escapes as a panic or a returned error value.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/profile-importer/internal/archive"
	"github.com/jonathan/profile-importer/internal/assemble"
	"github.com/jonathan/profile-importer/internal/document"
	"github.com/jonathan/profile-importer/internal/handoff"
	"github.com/jonathan/profile-importer/internal/schemas"
	"github.com/jonathan/profile-importer/internal/types"
)

// User-facing failure messages. Wording is part of the contract: callers
// surface these verbatim.
const (
	msgNoInput = "no file, URL, or pending import data found; upload a data export archive (.zip), " +
		"a profile document (.pdf), or provide a profile URL"
	msgUnsupportedFile = "unsupported file type; upload a .zip data export or a .pdf profile document"
	msgInvalidArchive  = "could not open the archive; the file may be corrupted or not a valid data export"
	msgArchiveEmpty    = "no recognizable data found in the archive"
	msgDocumentEmpty   = "no recognizable data found in the document"
	msgHandoffEmpty    = "imported data appears empty; try the import again"
	msgHandoffInvalid  = "imported data could not be read; try the import again"
	msgInvalidURL      = "that does not look like a valid profile URL; it should contain linkedin.com"
	msgNoFetcher       = "URL import is not configured"
	msgURLEmptyResult  = "the profile at that URL contained no usable fields"

	msgProfileOnlyExport = "only profile basics were found in this archive; request the complete data export " +
		"from your account settings to import positions, education, and skills"
)

// ProfileFetcher is the collaborator boundary for the URL fallback mode.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileURL string) (*types.ResumeContent, error)
}

// Input describes what the caller handed us. All fields are optional; mode
// selection happens on shape.
type Input struct {
	Filename string
	Data     []byte
	URL      string
}

// Importer runs one import call at a time. It holds only injected
// collaborators; per-call state lives on the stack, so a caller retrying is
// safe without coordination.
type Importer struct {
	store   handoff.Store
	fetcher ProfileFetcher
	verbose bool
}

// New creates an Importer. store may not be nil; fetcher may be nil when URL
// fallback is not configured.
func New(store handoff.Store, fetcher ProfileFetcher, verbose bool) *Importer {
	return &Importer{store: store, fetcher: fetcher, verbose: verbose}
}

// Import selects the input mode and runs it. It always returns a result:
// panics and internal errors are mapped to a failure result at this
// boundary.
func (im *Importer) Import(ctx context.Context, in Input) (result *types.ImportResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("import panicked: %v", r)
			result = failure(fmt.Sprintf("import failed unexpectedly: %v", r))
		}
	}()

	switch {
	case hasSuffixFold(in.Filename, ".zip"):
		return im.importArchive(in.Data)
	case hasSuffixFold(in.Filename, ".pdf"), hasSuffixFold(in.Filename, ".html"), hasSuffixFold(in.Filename, ".htm"):
		return im.importDocument(in.Filename, in.Data)
	case in.Filename != "":
		return failure(msgUnsupportedFile)
	}

	// No file: try the hand-off channel, consuming it exactly once.
	payload, found, err := handoff.Consume(ctx, im.store)
	if err != nil {
		return failure(fmt.Sprintf("could not read pending import data: %v", err))
	}
	if found {
		return im.importHandoffPayload(payload)
	}

	if strings.TrimSpace(in.URL) != "" {
		return im.importFromURL(ctx, in.URL)
	}

	return failure(msgNoInput)
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), suffix)
}

func failure(msg string) *types.ImportResult {
	return &types.ImportResult{Success: false, Error: msg}
}

// importArchive decodes the export archive and classifies it as full or
// profile-only before assembly.
func (im *Importer) importArchive(data []byte) *types.ImportResult {
	agg, decodeWarnings, err := archive.Decode(data, im.verbose)
	if err != nil {
		if errors.Is(err, archive.ErrInvalidArchive) {
			return failure(msgInvalidArchive)
		}
		return failure(fmt.Sprintf("archive import failed: %v", err))
	}

	if !agg.HasPrimarySections() {
		return failure(msgArchiveEmpty)
	}

	warnings := decodeWarnings
	if profileOnly(agg) {
		warnings = append(warnings, msgProfileOnlyExport)
	}

	return im.assemble(agg, warnings)
}

// profileOnly reports an archive that carried the profile table but none of
// positions, education, or skills.
func profileOnly(agg *types.ParsedAggregate) bool {
	return agg.Profile != nil &&
		len(agg.Positions) == 0 && len(agg.Education) == 0 && len(agg.Skills) == 0
}

// importDocument extracts text from the document and runs the heuristic
// cascade over it.
func (im *Importer) importDocument(filename string, data []byte) *types.ImportResult {
	agg, err := document.ExtractFile(filename, data, im.verbose)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedFormat) {
			return failure(msgUnsupportedFile)
		}
		return failure(fmt.Sprintf("could not read the document: %v", err))
	}

	if !agg.HasPrimarySections() {
		return failure(msgDocumentEmpty)
	}

	return im.assemble(agg, nil)
}

func (im *Importer) assemble(agg *types.ParsedAggregate, warnings []string) *types.ImportResult {
	res := assemble.Build(agg)
	warnings = append(warnings, res.Warnings...)
	if res.Content.IsEmpty() {
		return failure(msgDocumentEmpty)
	}
	return &types.ImportResult{
		Success:  true,
		Data:     res.Content,
		Warnings: warnings,
	}
}

// importHandoffPayload validates and decodes the consumed hand-off payload.
// The payload was written by the redirect flow in canonical shape, so it
// skips the assembler.
func (im *Importer) importHandoffPayload(payload string) *types.ImportResult {
	if strings.TrimSpace(payload) == "" {
		return failure(msgHandoffEmpty)
	}

	if err := schemas.ValidateResumePayload(payload); err != nil {
		if im.verbose {
			log.Printf("[VERBOSE] hand-off payload rejected: %v", err)
		}
		return failure(msgHandoffInvalid)
	}

	var content types.ResumeContent
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		return failure(msgHandoffInvalid)
	}

	if content.IsEmpty() {
		return failure(msgHandoffEmpty)
	}

	return &types.ImportResult{Success: true, Data: &content}
}

// importFromURL validates the URL shape, then delegates to the collaborator.
// Validation failures never reach the network.
func (im *Importer) importFromURL(ctx context.Context, profileURL string) *types.ImportResult {
	if !strings.Contains(strings.ToLower(profileURL), "linkedin.com") {
		return failure(msgInvalidURL)
	}
	if im.fetcher == nil {
		return failure(msgNoFetcher)
	}

	content, err := im.fetcher.FetchProfile(ctx, profileURL)
	if err != nil {
		return failure(mapFetchError(err))
	}
	if content == nil || content.IsEmpty() {
		return failure(msgURLEmptyResult)
	}

	return &types.ImportResult{Success: true, Data: content}
}

// mapFetchError pattern-matches collaborator failure messages onto specific
// user guidance, defaulting to a generic network message.
func mapFetchError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not found"):
		return "the profile could not be found; check the URL and make sure the profile is public"
	case strings.Contains(msg, "forbidden"):
		return "access to the profile was denied; the profile may be private"
	case strings.Contains(msg, "unauthorized"):
		return "the import service rejected the request; try signing in again"
	default:
		return "could not reach the import service; check your connection and try again"
	}
}
