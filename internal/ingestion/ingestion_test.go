package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mime   string
		data   []byte
		expect string
	}{
		{name: "plain", mime: MimeText, data: []byte("Skills: Golang"), expect: "Skills: Golang"},
		{name: "markdown", mime: MimeMarkdown, data: []byte("# Resume"), expect: "# Resume"},
		{name: "invalid utf8", mime: MimeText, data: []byte("Go\xffLang"), expect: "Go�Lang"},
		{name: "empty", mime: MimeText, data: nil, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractText(tt.mime, tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := ExtractText("image/png", []byte{0x89}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := MimeFromPath("resume.doc"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for .doc, got %v", err)
	}
	if _, err := ExtractText(MimePDF, []byte("this is definitely not a pdf document")); err == nil {
		t.Fatalf("expected error for broken pdf")
	}
}

func TestMimeFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"cv.txt":        MimeText,
		"CV.PDF":        MimePDF,
		"dir/cv.docx":   MimeDOCX,
		"notes/cv.md":   MimeMarkdown,
		"cv.final.text": MimeText,
	}
	for path, expect := range tests {
		got, err := MimeFromPath(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if got != expect {
			t.Fatalf("%s: expected %s, got %s", path, expect, got)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Built services in Golang"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if text != "Built services in Golang" {
		t.Fatalf("unexpected text %q", text)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestExtractTextDocx(t *testing.T) {
	t.Parallel()

	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>Skills</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Golang &amp; PostgreSQL</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText(MimeDOCX, data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "Skills\nGolang & PostgreSQL") {
		t.Fatalf("unexpected docx text %q", text)
	}
}

func TestXMLToText(t *testing.T) {
	t.Parallel()

	got := xmlToText(`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p><w:p></w:p><w:p></w:p><w:p><w:t>Docker</w:t></w:p>`)
	if got != "Go\tSQL\n\nDocker" {
		t.Fatalf("unexpected text %q", got)
	}
}

func buildDocx(t *testing.T, document string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": document,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}
