package document

import (
	"testing"

	pdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(s string, x, y float64) pdf.Text {
	return pdf.Text{Font: "Helvetica", FontSize: 11, X: x, Y: y, S: s}
}

func TestAssembleLinesOrdersRowsTopDown(t *testing.T) {
	// Fragments arrive in stream order, not render order; rows must come
	// back top of page first (largest Y), left to right within a row.
	texts := []pdf.Text{
		frag("Experience", 54, 640),
		frag("Lovelace", 96, 700),
		frag("Ada ", 54, 700),
		frag("Senior Engineer", 54, 610),
	}

	assert.Equal(t, "Ada Lovelace\nExperience\nSenior Engineer\n", assembleLines(texts))
}

func TestAssembleLinesToleratesBaselineJitter(t *testing.T) {
	// Glyph runs on one visual line can carry fractionally different Y
	// values; they still belong to the same row.
	texts := []pdf.Text{
		frag("January 2020 ", 54, 595.42),
		frag("- Present", 140, 595.18),
	}

	assert.Equal(t, "January 2020 - Present\n", assembleLines(texts))
}

func TestAssembleLinesSkipsBlankRows(t *testing.T) {
	texts := []pdf.Text{
		frag("   ", 54, 700),
		frag("Education", 54, 650),
	}

	assert.Equal(t, "Education\n", assembleLines(texts))
}

func TestAssembleLinesEmpty(t *testing.T) {
	assert.Empty(t, assembleLines(nil))
}

func TestExtractTextRejectsNonPDFBytes(t *testing.T) {
	_, err := ExtractText("profile.pdf", []byte("plain text, no PDF header"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open PDF")
}
