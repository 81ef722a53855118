package service

import (
	"bytes"
	"strings"

	"context"

	"github.com/ledongthuc/pdf"
	"github.com/tieubaoca/docsense-be/types"
)

// PDFExtractor reads the embedded text layer of a PDF, page by page in
// page order, joining pages with a single space. A PDF with no text layer
// at all (scanned images only) fails with NoTextFound.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Extract(ctx context.Context, blob types.DocumentBlob) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(blob.Data), int64(len(blob.Data)))
	if err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrCorruptDocument,
			"failed to read PDF stream", err)
	}

	var pages []string
	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", types.NewPipelineError(types.StageExtracting, types.ErrTimeout,
				"PDF extraction cancelled", err)
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without a readable text layer are skipped, not fatal.
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	content := strings.Join(pages, " ")
	if content == "" {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"PDF has no extractable text layer", nil)
	}
	return content, nil
}
