package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type DocumentKind string

const (
	DocumentPDF  DocumentKind = "pdf"
	DocumentDOCX DocumentKind = "docx"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

type TextExtractorService interface {
	ExtractText(data []byte, kind DocumentKind) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText returns the cleaned plain text of a résumé document.
func (t *textExtractorService) ExtractText(data []byte, kind DocumentKind) (string, error) {
	var (
		text string
		err  error
	)

	switch kind {
	case DocumentPDF:
		text, err = ExtractPDFText(data)
	case DocumentDOCX:
		text, err = ExtractDOCXText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, kind)
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// ExtractPDFText returns the plain text of every page in document order.
// Pages without extractable text contribute nothing.
func ExtractPDFText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if textBuilder.Len() > 0 && pageText != "" {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

// CleanText collapses whitespace runs inside each line and drops blank lines.
// PDF text runs often come out padded with spaces or split by stray breaks.
func CleanText(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
