package service

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tieubaoca/docsense-be/types"
)

// Stubbed in tests to avoid a hard dependency on the tesseract binary.
var execCommandContext = exec.CommandContext

// ImageExtractor runs OCR over raw image bytes with the tesseract binary.
// The language is fixed at construction time (default "eng"); illegible
// input that produces no text fails with NoTextFound.
type ImageExtractor struct {
	language string
}

func NewImageExtractor(language string) *ImageExtractor {
	if language == "" {
		language = "eng"
	}
	return &ImageExtractor{
		language: language,
	}
}

func (e *ImageExtractor) Extract(ctx context.Context, blob types.DocumentBlob) (string, error) {
	imageFile, err := writeTempImage(blob)
	if err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"failed to stage image for OCR", err)
	}
	defer os.Remove(imageFile)

	ocrCmd := execCommandContext(ctx, "tesseract",
		imageFile,
		"stdout",
		"-l", e.language,
		"--oem", "3", // Use LSTM OCR Engine Mode
		"--psm", "3", // Auto-detect page segmentation mode
	)
	var ocrOut bytes.Buffer
	ocrCmd.Stdout = &ocrOut
	if err := ocrCmd.Run(); err != nil {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"OCR engine failed to read image", err)
	}

	text := strings.TrimSpace(ocrOut.String())
	if text == "" {
		return "", types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound,
			"OCR produced no text for image", nil)
	}
	return text, nil
}

func writeTempImage(blob types.DocumentBlob) (string, error) {
	ext := filepath.Ext(blob.FileName)
	if ext == "" {
		ext = ".png"
	}
	tmp, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(blob.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
