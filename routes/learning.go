package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hiredai/models"
	"hiredai/services"
	"hiredai/utils"
)

var learningLogger = zap.NewNop()

// SetLearningLogger wires the application logger into the learning
// handlers.
func SetLearningLogger(logger *zap.Logger) {
	if logger != nil {
		learningLogger = logger
	}
}

// PredictLearningPathRouteHandler classifies a questionnaire into a
// learning style. The body is either a raw answers map or a
// frontend-computed assessment; the request type discriminates on the
// assessment keys.
func PredictLearningPathRouteHandler(c *gin.Context) {
	var req models.PredictLearningPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if req.Assessment != nil {
		c.JSON(http.StatusOK, services.PassThroughAssessment(*req.Assessment))
		return
	}

	result, err := services.ClassifyAnswers(req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrNoAnswers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No answers provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// LearningPathRouteHandler resolves a course to its dataset, applies
// the requested learning mode, and returns the content. Embedded
// sample content backs courses without a dataset file.
func LearningPathRouteHandler(c *gin.Context) {
	courseName := c.Param("courseName")
	mode := c.DefaultQuery("mode", services.ModeElaborate)
	if !services.ValidMode(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mode, expected Short, Elaborate or Realistic"})
		return
	}

	datasetLabel := "embedded_fallback"
	var records []map[string]any

	if filename, ok := services.FindDatasetForCourse(courseName); ok {
		rows, err := services.LoadDataset(filename)
		if err != nil {
			learningLogger.Warn("failed to load dataset, using fallback content",
				zap.String("file", filename), zap.Error(err))
		} else if len(rows) > 0 {
			records = rows
			datasetLabel = filename
		}
	}

	if len(records) == 0 {
		fallback, ok := utils.FallbackContent(courseName)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No course content found for " + courseName})
			return
		}
		records = fallback
	}

	records = services.ApplyMode(records, mode)
	records = services.SanitizeRecords(records)

	c.JSON(http.StatusOK, models.LearningPathContent{
		CourseName:      courseName,
		DatasetFilename: datasetLabel,
		LearningMode:    mode,
		TotalModules:    len(records),
		Content:         records,
	})
}
