package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal uncompressed PDF with one Helvetica page per
// entry. An empty entry produces a page that draws no text.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	fontID := 3
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var kids []string
	for _, text := range pages {
		pageID := len(objects) + 1
		contentID := pageID + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageID))

		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontID, contentID))

		stream := "q Q"
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractPDFText_PagesInOrder(t *testing.T) {
	data := buildPDF(t, "First page text", "", "Second page text")

	text, err := NewTextExtractorService().ExtractText(data, DocumentPDF)

	require.NoError(t, err)
	first := strings.Index(text, "First page text")
	second := strings.Index(text, "Second page text")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestExtractPDFText_CorruptFile(t *testing.T) {
	text, err := ExtractPDFText([]byte("definitely not a pdf"))

	require.Error(t, err)
	assert.Empty(t, text)
}

func TestExtractText_UnsupportedKind(t *testing.T) {
	_, err := NewTextExtractorService().ExtractText([]byte("x"), DocumentKind("rtf"))

	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Senior </w:t></w:r><w:r><w:t>Go Engineer</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go, SQL</w:t></w:r></w:p>
</w:body>
</w:document>`

func TestWordXMLToText(t *testing.T) {
	text, err := wordXMLToText(documentXML)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Engineer\nSkills:\tGo, SQL", text)
}

func TestWordXMLToText_Malformed(t *testing.T) {
	_, err := wordXMLToText("<w:p><w:t>unclosed")

	assert.Error(t, err)
}

func TestExtractDOCXText(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	text, err := NewTextExtractorService().ExtractText(buf.Bytes(), DocumentDOCX)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Engineer\nSkills: Go, SQL", text)
}

func TestExtractDOCXText_NotAZip(t *testing.T) {
	_, err := ExtractDOCXText([]byte("plain text"))

	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  a  \n\n\n   b \n", want: "a\nb"},
		{in: "Go   developer\t\tBerlin", want: "Go developer Berlin"},
		{in: "line one\r\n\r\nline two", want: "line one\nline two"},
		{in: " \n\t\n", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in), "input %q", tt.in)
	}
}
