// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/profile-importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportResult outputs a human-readable summary of an import run:
// outcome, recovered sections, and any warnings.
func (p *Printer) PrintImportResult(result *types.ImportResult) {
	if result == nil {
		return
	}

	if !result.Success {
		p.printBox("IMPORT FAILED", result.Error)
		return
	}

	p.printContentSummary(result.Data)
	p.PrintWarnings(result.Warnings)
}

// printContentSummary outputs per-section counts for the imported content.
func (p *Printer) printContentSummary(content *types.ResumeContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	if pi := content.PersonalInfo; pi != nil {
		name := pi.Name
		if name == "" {
			name = strings.TrimSpace(pi.FirstName + " " + pi.LastName)
		}
		if name != "" {
			sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
		}
		if pi.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:     %s\n", pi.Email))
		}
		if pi.Location != "" {
			sb.WriteString(fmt.Sprintf("Location:  %s\n", pi.Location))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Positions:       %d\n", len(content.Experience)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(content.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", len(content.Certifications)))
	sb.WriteString(fmt.Sprintf("Links:           %d\n", len(content.Links)))

	if s := content.Skills; s != nil {
		total := len(s.Technical) + len(s.Tools) + len(s.Soft)
		sb.WriteString(fmt.Sprintf("Skills:          %d\n", total))
		sb.WriteString(fmt.Sprintf("Languages:       %d\n", len(s.Languages)))
	}

	if len(content.Experience) > 0 {
		sb.WriteString("\nRecent positions:\n")
		count := min(len(content.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := content.Experience[i]
			line := exp.Position
			if exp.Company != "" {
				line += " @ " + exp.Company
			}
			if len(line) > 48 {
				line = line[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(content.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.Experience)-maxItemsToShow))
		}
	}

	p.printBox("IMPORTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs import warnings, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("IMPORT WARNINGS", sb.String())
}
