package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAFallbackHandler handles everything no declared route matched.
// Unknown /api paths get an explicit 404 so they are never shadowed by
// the single-page-app fallback; any other path serves the built
// frontend, with index.html covering client-side routes.
func SPAFallbackHandler(distDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		requested := filepath.Join(distDir, filepath.Clean("/"+path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(distDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.String(http.StatusOK, "Frontend build not found. Build the frontend and point FRONTEND_DIST at it.")
	}
}
