package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tieubaoca/docsense-be/types"
)

func documentRouter(repo *memoryRepo, remover DocumentRemover) *gin.Engine {
	router := gin.New()
	h := NewDocumentHandler(repo, remover)
	router.GET("/api/v1/documents", h.HandleList)
	router.GET("/api/v1/documents/:id", h.HandleGet)
	router.DELETE("/api/v1/documents/:id", h.HandleDelete)
	return router
}

func seedDocuments(repo *memoryRepo, n int, fileType types.FormatKind) {
	for i := 0; i < n; i++ {
		repo.Save(context.Background(), &types.DocumentRecord{
			Title:    "doc",
			Content:  "content",
			FileType: fileType,
		})
	}
}

func TestDocumentListPagination(t *testing.T) {
	repo := newMemoryRepo()
	seedDocuments(repo, 25, types.FormatPlainText)
	router := documentRouter(repo, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents?page=2&limit=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data types.PaginatedDocumentsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Data.CurrentPage)
	assert.Equal(t, int64(3), resp.Data.TotalPages)
	assert.Equal(t, int64(25), resp.Data.TotalDocuments)
	assert.Len(t, resp.Data.Documents, 10)
}

func TestDocumentListFileTypeFilter(t *testing.T) {
	repo := newMemoryRepo()
	seedDocuments(repo, 3, types.FormatPlainText)
	seedDocuments(repo, 2, types.FormatPdf)
	router := documentRouter(repo, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents?fileType=pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data types.PaginatedDocumentsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Data.TotalDocuments)
	for _, doc := range resp.Data.Documents {
		assert.Equal(t, types.FormatPdf, doc.FileType)
	}
}

func TestDocumentGet(t *testing.T) {
	repo := newMemoryRepo()
	id, _ := repo.Save(context.Background(), &types.DocumentRecord{
		Title:    "quarterly",
		Content:  "revenue grew",
		FileType: types.FormatPlainText,
	})
	router := documentRouter(repo, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data types.DocumentRecord `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Data.ID)
	assert.Equal(t, "quarterly", resp.Data.Title)
}

func TestDocumentGetNotFound(t *testing.T) {
	router := documentRouter(newMemoryRepo(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) RemoveDocument(ctx context.Context, id string) error {
	r.removed = append(r.removed, id)
	return nil
}

func TestDocumentDelete(t *testing.T) {
	repo := newMemoryRepo()
	id, _ := repo.Save(context.Background(), &types.DocumentRecord{Title: "t", Content: "c"})
	remover := &recordingRemover{}
	router := documentRouter(repo, remover)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/documents/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.records, 0)
	assert.Equal(t, []string{id}, remover.removed)

	// Deleting again is a 404, the first delete already removed it.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/v1/documents/"+id, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
