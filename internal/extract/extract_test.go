package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills: Python, Docker</w:t></w:r></w:p>
</w:body>
</w:document>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildDocx(t *testing.T) []byte {
	return buildZip(t, map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRels,
	})
}

func TestExtractDocx(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), buildDocx(t), mimeDOCX, "cv.docx")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Python, Docker", text)
}

func TestExtractZipDocxNormalizes(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), buildDocx(t), "application/zip", "cv.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Python")
}

func TestExtractRealZipRejected(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})
	_, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "notes.zip")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractPlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("\xEF\xBB\xBFGo and SQL"), "text/plain", "cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL", text)
}

func TestExtractInvalidUTF8IsDecodeError(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0x66, 0xff, 0xfe, 0x6f}, "text/plain", "")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestExtractLatin1Charset(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("Jos\xe9"), "text/plain; charset=ISO-8859-1", "")
	require.NoError(t, err)
	assert.Equal(t, "José", text)
}

func TestExtractUTF16WithBOM(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'G', 0, 'o', 0}
	text, err := DecodeText(data, "")
	require.NoError(t, err)
	assert.Equal(t, "Go", text)
}

func TestDecodeUnknownCharset(t *testing.T) {
	_, err := DecodeText([]byte("x"), "klingon")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestExtractHTML(t *testing.T) {
	doc := `<html><head><style>p{}</style><script>var x=1</script></head>
<body><h1>Jane Doe</h1><ul><li>Python</li><li>Docker</li></ul><p>Led   a team.</p></body></html>`
	text, err := ExtractTextFromBytes(context.Background(), []byte(doc), "", "cv.html")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython\nDocker\nLed a team.", text)
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestExtractPDFJoinsPages(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), readFixture(t, "two-page.pdf"), "application/pdf", "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Python, Docker", text)
}

func TestExtractPDFSniffedWithoutMime(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), readFixture(t, "two-page.pdf"), "", "upload")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestExtractPDFWithoutTextLayer(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), readFixture(t, "image-only.pdf"), "application/pdf", "scan.pdf")
	assert.ErrorIs(t, err, ErrExtractionFailure)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("definitely not a pdf"), "application/pdf", "cv.pdf")
	assert.ErrorIs(t, err, ErrExtractionFailure)
}

func TestExtractUnsupported(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png", "photo.png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{name: "declared", mime: "application/pdf", want: mimePDF},
		{name: "octet by extension", mime: "application/octet-stream", fileName: "cv.md", want: mimeMarkdown},
		{name: "sniffed text", data: []byte("plain words here"), want: mimeText},
		{name: "sniffed pdf", data: []byte("%PDF-1.4\n"), want: mimePDF},
		{name: "charset param stripped", mime: "Text/Plain; charset=utf-8", want: mimeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.mime, tt.fileName, tt.data))
		})
	}
}

func TestExtractHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExtractTextFromBytes(ctx, []byte("x"), "text/plain", "")
	assert.ErrorIs(t, err, context.Canceled)
}
