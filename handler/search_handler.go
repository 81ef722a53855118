package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/docsense-be/database"
	"github.com/tieubaoca/docsense-be/types"
)

type SearchHandler struct {
	searchStore *database.SearchStore
}

func NewSearchHandler(searchStore *database.SearchStore) *SearchHandler {
	return &SearchHandler{
		searchStore: searchStore,
	}
}

// HandleSearch runs a keyword query over the analyzed-document index.
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	if h.searchStore == nil {
		c.JSON(http.StatusServiceUnavailable, types.DataResponse{
			Status:  "error",
			Message: "Search index is not configured",
		})
		return
	}

	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Query parameter q is required",
		})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	hits, err := h.searchStore.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Search failed: " + err.Error(),
		})
		return
	}
	if hits == nil {
		hits = []types.SearchHit{}
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data: types.SearchResponse{
			Documents: hits,
		},
	})
}
