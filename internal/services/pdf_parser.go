package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFileType is returned for uploads that are neither PDF nor
// plain text. DOCX is deliberately not supported; the boundary rejects it
// rather than advertising a capability the parser does not have.
var ErrUnsupportedFileType = errors.New("unsupported file type")

type DocumentParserService interface {
	ExtractText(filePath string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText converts an uploaded document into normalized plain text
// suitable for embedding in a prompt.
func (p *documentParserService) ExtractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err := p.extractPDFText(filePath)
		if err != nil {
			return "", err
		}
		return NormalizeExtractedText(text), nil
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return NormalizeExtractedText(string(data)), nil
	default:
		return "", ErrUnsupportedFileType
	}
}

func (p *documentParserService) extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

var (
	blankLinesPattern           = regexp.MustCompile(`\n{2,}`)
	horizontalWhitespacePattern = regexp.MustCompile(`[ \t]{2,}`)
)

// NormalizeExtractedText repairs the spurious line breaks PDF extraction
// injects mid-sentence: a single newline between two non-blank lines becomes
// a space, runs of blank lines collapse to one newline, and whitespace runs
// collapse to a single space.
func NormalizeExtractedText(raw string) string {
	joined := joinBrokenLines(raw)
	joined = blankLinesPattern.ReplaceAllString(joined, "\n")
	joined = horizontalWhitespacePattern.ReplaceAllString(joined, " ")
	return strings.TrimSpace(joined)
}

// joinBrokenLines replaces every newline whose neighbors are both
// non-newline characters with a space. Paragraph breaks (two or more
// newlines) are left for the blank-line collapse.
func joinBrokenLines(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' &&
			i > 0 && text[i-1] != '\n' &&
			i+1 < len(text) && text[i+1] != '\n' {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
