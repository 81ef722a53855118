package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/tieubaoca/docsense-be/types"
)

// DocxExtractor pulls the raw paragraph text out of the Office-XML
// container (word/document.xml), discarding all formatting. Paragraphs
// are joined with a single space. An unreadable container fails with
// CorruptDocument.
type DocxExtractor struct{}

func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

func (e *DocxExtractor) Extract(ctx context.Context, blob types.DocumentBlob) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(blob.Data), int64(len(blob.Data)))
	if err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrCorruptDocument,
			"failed to open DOCX container", err)
	}

	var documentXML *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			documentXML = file
			break
		}
	}
	if documentXML == nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrCorruptDocument,
			"DOCX container has no word/document.xml", nil)
	}

	reader, err := documentXML.Open()
	if err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrCorruptDocument,
			"failed to open word/document.xml", err)
	}
	defer reader.Close()

	paragraphs, err := parseParagraphs(reader)
	if err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrCorruptDocument,
			"failed to parse word/document.xml", err)
	}

	content := strings.Join(paragraphs, " ")
	if content == "" {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"DOCX contains no paragraph text", nil)
	}
	return content, nil
}

// parseParagraphs walks the document XML collecting the character data of
// <w:t> runs, flushing one string per <w:p> paragraph.
func parseParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []string
	var current strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
	// Text outside any closed paragraph still counts.
	if text := strings.TrimSpace(current.String()); text != "" {
		paragraphs = append(paragraphs, text)
	}
	return paragraphs, nil
}
