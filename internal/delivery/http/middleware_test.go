package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{
			name:    "exact match",
			origin:  "http://localhost:3000",
			allowed: []string{"http://localhost:3000"},
			want:    true,
		},
		{
			name:    "no match",
			origin:  "http://evil.example",
			allowed: []string{"http://localhost:3000"},
			want:    false,
		},
		{
			name:    "wildcard suffix match",
			origin:  "http://localhost:5173",
			allowed: []string{"http://localhost:*"},
			want:    true,
		},
		{
			name:    "wildcard does not match different host",
			origin:  "http://evil.example:3000",
			allowed: []string{"http://localhost:*"},
			want:    false,
		},
		{
			name:    "empty origin never matches",
			origin:  "",
			allowed: []string{"http://localhost:3000"},
			want:    false,
		},
		{
			name:    "empty allow list",
			origin:  "http://localhost:3000",
			allowed: nil,
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isAllowedOrigin(tc.origin, tc.allowed))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		r.POST("/api/v1/recommendations", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	t.Run("sets headers for an allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("omits headers for a disallowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", nil)
		req.Header.Set("Origin", "http://evil.example")
		newRouter().ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight with no content", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "POST, GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})
}
