package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-scorer/internal/shared/storage/object"
)

const (
	mimePDF      = "application/pdf"
	mimeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText     = "text/plain"
	mimeMarkdown = "text/markdown"
	mimeHTML     = "text/html"
	mimeZip      = "application/zip"
	mimeOctet    = "application/octet-stream"
)

var extensionTypes = map[string]string{
	".pdf":      mimePDF,
	".docx":     mimeDOCX,
	".txt":      mimeText,
	".text":     mimeText,
	".md":       mimeMarkdown,
	".markdown": mimeMarkdown,
	".html":     mimeHTML,
	".htm":      mimeHTML,
}

// ExtractText reads a stored object and extracts its text.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func ExtractText(ctx context.Context, store object.ObjectStore, key string, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", key, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", key, err)
	}

	text, err := ExtractTextFromBytes(ctx, raw, mimeType, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", key, err)
	}
	return text, nil
}

// ExtractTextFromBytes extracts text from an in-memory payload. The format is
// taken from mimeType, then from the file extension, then sniffed.
func ExtractTextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	normalized, params := normalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	case mimeText, mimeMarkdown:
		return DecodeText(data, params["charset"])
	case mimeHTML:
		decoded, err := DecodeText(data, params["charset"])
		if err != nil {
			return "", err
		}
		return HTMLText(decoded)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, normalized)
	}
}

// DetectFormat reports the normalized MIME type ExtractTextFromBytes would use.
func DetectFormat(mimeType string, fileName string, data []byte) string {
	normalized, _ := normalizeMimeType(mimeType, fileName, data)
	return normalized
}

func extractPDF(data []byte) (text string, err error) {
	defer func() {
		// the pdf reader panics on some malformed object streams
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrExtractionFailure, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrExtractionFailure, err)
	}

	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		plain, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %v", ErrExtractionFailure, i, err)
		}
		pages = append(pages, strings.TrimSpace(plain))
	}

	out := strings.TrimSpace(strings.Join(pages, "\n"))
	if out == "" {
		return "", fmt.Errorf("%w: pdf has no extractable text", ErrExtractionFailure)
	}
	return out, nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty docx data", ErrExtractionFailure)
	}
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrExtractionFailure, err)
	}
	defer r.Close()

	text, err := stripDocxXML(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrExtractionFailure, err)
	}
	return text, nil
}

// stripDocxXML keeps w:t runs and turns paragraph and line breaks into newlines.
func stripDocxXML(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p", "br":
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func normalizeMimeType(mimeType string, fileName string, data []byte) (string, map[string]string) {
	clean, params := parseMediaType(mimeType)

	if clean == "" || clean == mimeOctet {
		if byExt, ok := extensionTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
			return byExt, params
		}
		if len(data) == 0 {
			return clean, params
		}
		clean, params = parseMediaType(http.DetectContentType(data))
	}

	if clean != mimeZip {
		return clean, params
	}
	if mapped := mapOOXMLFromZip(data); mapped != "" {
		return mapped, params
	}
	if strings.EqualFold(filepath.Ext(fileName), ".docx") {
		return mimeDOCX, params
	}
	return clean, params
}

func parseMediaType(raw string) (string, map[string]string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", map[string]string{}
	}
	mediaType, params, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(raw, ";")[0])), map[string]string{}
	}
	return mediaType, params
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch name {
		case "word/document.xml":
			return mimeDOCX
		case "xl/workbook.xml":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "ppt/presentation.xml":
			return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		}
	}
	return ""
}
