package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/docsense-be/service"
	"github.com/tieubaoca/docsense-be/types"
)

const maxUploadSize = 10 << 20

type AnalyzeHandler struct {
	pipeline *services.PipelineService
}

func NewAnalyzeHandler(pipeline *services.PipelineService) *AnalyzeHandler {
	return &AnalyzeHandler{
		pipeline: pipeline,
	}
}

// HandleAnalyze accepts a multipart upload, runs it through the pipeline
// and returns the persisted record with its analysis payload.
func (h *AnalyzeHandler) HandleAnalyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "File too large",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Failed to read file",
		})
		return
	}

	blob := types.DocumentBlob{
		Data:     data,
		MimeType: declaredMimeType(header.Header.Get("Content-Type"), header.Filename),
		FileName: header.Filename,
	}

	result, err := h.pipeline.Process(c.Request.Context(), blob)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.DataResponse{
		Status: "success",
		Data:   result,
	})
}

func (h *AnalyzeHandler) sendPipelineError(c *gin.Context, err error) {
	var pipelineErr *types.PipelineError
	if !errors.As(err, &pipelineErr) {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	status := http.StatusBadRequest
	switch pipelineErr.Kind {
	case types.ErrStorageUnavailable, types.ErrServiceUnavailable:
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, types.DataResponse{
		Status: "error",
		Data: types.PipelineErrorResponse{
			Stage:     pipelineErr.Stage,
			ErrorKind: pipelineErr.Kind,
			Message:   pipelineErr.Message,
		},
	})
}

// declaredMimeType prefers the multipart part's content type, falling
// back to the filename extension.
func declaredMimeType(contentType, filename string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return contentType
}
