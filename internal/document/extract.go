// Package document recovers resume content from rendered profile documents
// (PDF or saved HTML) using positional text heuristics. Everything here is
// best-effort: a field that cannot be recovered is left absent, never an
// error.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for document extensions other than
// .pdf/.html/.htm.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractText extracts plain text from a document, preserving approximate
// line structure. The heuristic extractor downstream works markedly better
// with line breaks, so the PDF path reconstructs lines from glyph positions
// instead of using the flat text stream.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".html", ".htm":
		return extractHTMLText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// extractPDFText walks every page and reconstructs line structure from the
// positioned text fragments.
func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		sb.WriteString(assembleLines(page.Content().Text))
	}

	return normalizeText(sb.String()), nil
}

// assembleLines groups positioned text fragments into lines by their
// vertical coordinate and joins each row left to right. Pages render
// top-down but PDF Y grows upward, so rows sort descending.
func assembleLines(texts []pdf.Text) string {
	rows := make(map[int][]pdf.Text)
	for _, t := range texts {
		y := int(t.Y)
		rows[y] = append(rows[y], t)
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var sb strings.Builder
	for _, y := range ys {
		frags := rows[y]
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
		var line strings.Builder
		for _, f := range frags {
			line.WriteString(f.S)
		}
		text := strings.TrimSpace(line.String())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// extractHTMLText extracts visible text from a saved profile page. Noise
// elements are removed, then leaf block/inline elements are emitted one per
// line so section headings keep their own lines.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, aside, form").Remove()

	var lines []string
	var last string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, dt, dd, td, span, a").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" || text == last {
			return
		}
		lines = append(lines, text)
		last = text
	})

	return normalizeText(strings.Join(lines, "\n")), nil
}

// normalizeText normalizes line endings and collapses runs of blank lines
// and intra-line whitespace.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
