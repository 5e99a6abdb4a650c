package routes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"hiredai/services"
)

// HealthRouteHandler reports service status and dataset availability.
func HealthRouteHandler(c *gin.Context) {
	files, err := services.ListDatasetFiles()
	count := 0
	if err == nil {
		count = len(files)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"dataset_dir": services.DatasetDir(),
		"datasets":    count,
	})
}

// CheckDataRouteHandler lists every available dataset file with its
// base name. A missing dataset directory is reported, not an error.
func CheckDataRouteHandler(c *gin.Context) {
	files, err := services.ListDatasetFiles()
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{
				"available_datasets": []string{},
				"base_names":         []string{},
				"total":              0,
				"note":               fmt.Sprintf("%s not found", services.DatasetDir()),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	baseNames := make([]string, len(files))
	for i, f := range files {
		base := filepath.Base(f)
		baseNames[i] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	c.JSON(http.StatusOK, gin.H{
		"available_datasets": files,
		"base_names":         baseNames,
		"total":              len(files),
	})
}
