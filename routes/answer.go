package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiredai/models"
	"hiredai/services"
)

const (
	defaultMaxTokens   = 200
	defaultTemperature = 0.6
)

// GenerateAnswerRouteHandler proxies a prompt to the configured LLM
// provider. Upstream failures surface inside the answer field, so the
// endpoint itself always succeeds for a valid request.
func GenerateAnswerRouteHandler(c *gin.Context) {
	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil && *req.MaxTokens > 0 {
		maxTokens = *req.MaxTokens
	}
	temperature := defaultTemperature
	if req.Temperature != nil && *req.Temperature > 0 {
		temperature = *req.Temperature
	}

	answer := services.GenerateAnswer(c.Request.Context(), req.Prompt, maxTokens, temperature)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
