// Package ingestion turns uploaded resume files into plain UTF-8 text.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimeText     = "text/plain"
	MimeMarkdown = "text/markdown"
	MimePDF      = "application/pdf"
	MimeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupported = errors.New("unsupported file type")

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>`)
	tabStop      = regexp.MustCompile(`<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

var extensions = map[string]string{
	".txt":  MimeText,
	".text": MimeText,
	".md":   MimeMarkdown,
	".pdf":  MimePDF,
	".docx": MimeDOCX,
}

// MimeFromPath maps a file extension to a supported MIME type.
func MimeFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return mime, nil
}

// ReadFile reads a resume from disk and extracts its text.
func ReadFile(path string) (string, error) {
	mime, err := MimeFromPath(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return ExtractText(mime, data)
}

// ExtractText returns the text content of data. Invalid UTF-8 sequences are
// replaced.
func ExtractText(mime string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch mime {
	case MimeText, MimeMarkdown:
		text = string(data)
	case MimePDF:
		text, err = extractPDFText(bytes.NewReader(data))
	case MimeDOCX:
		text, err = extractDocxText(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(text, "�"), nil
}

func extractPDFText(reader *bytes.Reader) (string, error) {
	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(reader io.ReaderAt) (string, error) {
	size := int64(0)
	if r, ok := reader.(*bytes.Reader); ok {
		size = r.Size()
	}

	doc, err := docx.ReadDocxFromMemory(reader, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return xmlToText(doc.Editable().GetContent()), nil
}

// xmlToText flattens WordprocessingML to text with one line per paragraph.
func xmlToText(content string) string {
	text := paragraphEnd.ReplaceAllString(content, "\n")
	text = tabStop.ReplaceAllString(text, "\t")
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
