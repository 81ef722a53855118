package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/docsense-be/types"
)

// mimeFormats is the fixed detection table. Anything outside it is
// unsupported and extraction is never attempted.
var mimeFormats = map[string]types.FormatKind{
	"image/png":      types.FormatImage,
	"image/jpeg":     types.FormatImage,
	"image/jpg":      types.FormatImage,
	"image/gif":      types.FormatImage,
	"image/tiff":     types.FormatImage,
	"image/bmp":      types.FormatImage,
	"image/webp":     types.FormatImage,
	"application/pdf": types.FormatPdf,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": types.FormatDocx,
	"text/plain": types.FormatPlainText,
}

// DetectFormat classifies a declared mimetype into a FormatKind. Pure and
// total: unknown or missing mimetypes map to FormatUnsupported.
func DetectFormat(mimetype string) types.FormatKind {
	// Drop mime parameters such as "; charset=utf-8"
	if idx := strings.Index(mimetype, ";"); idx != -1 {
		mimetype = mimetype[:idx]
	}
	mimetype = strings.ToLower(strings.TrimSpace(mimetype))
	if kind, ok := mimeFormats[mimetype]; ok {
		return kind
	}
	return types.FormatUnsupported
}

// TextExtractor converts a raw blob into a UTF-8 string. Implementations
// either return non-empty text or a kind-tagged error; an empty string is
// never a success.
type TextExtractor interface {
	Extract(ctx context.Context, blob types.DocumentBlob) (string, error)
}

// ExtractService dispatches a blob to the extractor matching its format.
type ExtractService struct {
	extractors map[types.FormatKind]TextExtractor
}

func NewExtractService(ocrLanguage string) *ExtractService {
	return &ExtractService{
		extractors: map[types.FormatKind]TextExtractor{
			types.FormatImage:     NewImageExtractor(ocrLanguage),
			types.FormatPdf:       NewPDFExtractor(),
			types.FormatDocx:      NewDocxExtractor(),
			types.FormatPlainText: NewPlainTextExtractor(),
		},
	}
}

func (s *ExtractService) Extract(ctx context.Context, kind types.FormatKind, blob types.DocumentBlob) (*types.ExtractedText, error) {
	extractor, ok := s.extractors[kind]
	if !ok {
		return nil, types.NewPipelineError(types.StageExtracting, types.ErrUnsupportedFormat,
			fmt.Sprintf("no extractor registered for format %q", kind), nil)
	}
	content, err := extractor.Extract(ctx, blob)
	if err != nil {
		return nil, err
	}
	return &types.ExtractedText{
		Content: content,
		Format:  kind,
	}, nil
}
