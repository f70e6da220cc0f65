package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExtractedTextJoinsBrokenLines(t *testing.T) {
	// A single newline is a mid-sentence break; a blank line is a real
	// paragraph break and survives as one newline.
	got := NormalizeExtractedText("Line one\nbroken\n\nNew paragraph")

	assert.Equal(t, "Line one broken\nNew paragraph", got)
}

func TestNormalizeExtractedTextCollapsesWhitespaceRuns(t *testing.T) {
	got := NormalizeExtractedText("Senior   Engineer\t\tat  ACME")

	assert.Equal(t, "Senior Engineer at ACME", got)
}

func TestNormalizeExtractedTextCollapsesManyBlankLines(t *testing.T) {
	got := NormalizeExtractedText("Experience\n\n\n\nEducation")

	assert.Equal(t, "Experience\nEducation", got)
}

func TestNormalizeExtractedTextTrims(t *testing.T) {
	got := NormalizeExtractedText("\n\n  Jane Doe  \n\n")

	assert.Equal(t, "Jane Doe", got)
}

func TestExtractTextPlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nSenior Engineer\n\nExperience: 10 years"), 0644))

	parser := NewDocumentParserService()
	content, err := parser.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Senior Engineer\nExperience: 10 years", content)
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText("cv.docx")

	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
