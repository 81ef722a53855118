package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/tieubaoca/docsense-be/types"
)

// PlainTextExtractor decodes the blob as UTF-8 without modification, so
// valid input round-trips byte for byte.
type PlainTextExtractor struct{}

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Extract(ctx context.Context, blob types.DocumentBlob) (string, error) {
	if !utf8.Valid(blob.Data) {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrEncodingError,
			"file is not valid UTF-8", nil)
	}
	content := string(blob.Data)
	if strings.TrimSpace(content) == "" {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"file contains no text", nil)
	}
	return content, nil
}
