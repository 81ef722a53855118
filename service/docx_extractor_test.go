package service

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/tieubaoca/docsense-be/types"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestDocxExtractParagraphs(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`)

	extractor := NewDocxExtractor()
	content, err := extractor.Extract(context.Background(), types.DocumentBlob{Data: data})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "First paragraph. Second paragraph."
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestDocxCorruptContainer(t *testing.T) {
	extractor := NewDocxExtractor()
	_, err := extractor.Extract(context.Background(), types.DocumentBlob{
		Data: []byte("this is not a zip archive"),
	})
	assertPipelineError(t, err, types.StageExtracting, types.ErrCorruptDocument)
}

func TestDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("word/styles.xml")
	f.Write([]byte("<styles/>"))
	w.Close()

	extractor := NewDocxExtractor()
	_, err := extractor.Extract(context.Background(), types.DocumentBlob{Data: buf.Bytes()})
	assertPipelineError(t, err, types.StageExtracting, types.ErrCorruptDocument)
}

func TestDocxNoText(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p></w:p></w:body></w:document>`)

	extractor := NewDocxExtractor()
	_, err := extractor.Extract(context.Background(), types.DocumentBlob{Data: data})
	assertPipelineError(t, err, types.StageExtracting, types.ErrNoTextFound)
}
