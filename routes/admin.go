package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiredai/models"
)

// CreateUserRouteHandler is a placeholder admin endpoint. It validates
// the payload and echoes the email back; nothing is persisted.
func CreateUserRouteHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"user": gin.H{"email": req.Email},
	})
}
