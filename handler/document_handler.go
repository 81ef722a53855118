package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/docsense-be/repository"
	"github.com/tieubaoca/docsense-be/types"
)

// DocumentRemover removes a record's entry from the search index.
type DocumentRemover interface {
	RemoveDocument(ctx context.Context, id string) error
}

type DocumentHandler struct {
	repo    repository.DocumentRepo
	remover DocumentRemover
}

func NewDocumentHandler(repo repository.DocumentRepo, remover DocumentRemover) *DocumentHandler {
	return &DocumentHandler{
		repo:    repo,
		remover: remover,
	}
}

func (h *DocumentHandler) HandleList(c *gin.Context) {
	var req types.ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid query parameters",
		})
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	records, total, err := h.repo.List(c.Request.Context(), req.Page, req.Limit, req.FileType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Error retrieving documents: " + err.Error(),
		})
		return
	}
	if records == nil {
		records = []*types.DocumentRecord{}
	}

	totalPages := total / req.Limit
	if total%req.Limit != 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data: types.PaginatedDocumentsResponse{
			Documents:      records,
			CurrentPage:    req.Page,
			TotalPages:     totalPages,
			TotalDocuments: total,
		},
	})
}

func (h *DocumentHandler) HandleGet(c *gin.Context) {
	id := c.Param("id")
	record, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Error retrieving document: " + err.Error(),
		})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  "error",
			Message: "Document not found",
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   record,
	})
}

func (h *DocumentHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Error deleting document: " + err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  "error",
			Message: "Document not found",
		})
		return
	}

	if h.remover != nil {
		if err := h.remover.RemoveDocument(c.Request.Context(), id); err != nil {
			log.Printf("Failed to remove document %s from search index: %v", id, err)
		}
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  "success",
		Message: "Document deleted successfully",
	})
}
