package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSearchHandlerUnconfigured(t *testing.T) {
	router := gin.New()
	router.GET("/api/v1/documents/search", NewSearchHandler(nil).HandleSearch)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents/search?q=report", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchHandlerUnconfiguredBeatsMissingQuery(t *testing.T) {
	router := gin.New()
	router.GET("/api/v1/documents/search", NewSearchHandler(nil).HandleSearch)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/documents/search", nil)
	router.ServeHTTP(w, req)

	// The configuration guard runs before query validation.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
