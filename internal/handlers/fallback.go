package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"pms-project-backend/internal/logger"
	"pms-project-backend/internal/models"
)

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	result := models.Fail[any](http.StatusNotFound, "Route not found",
		fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path))
	c.JSON(result.StatusCode, result)
}

// Recovered is the gin.RecoveryFunc turning a panic into a 500 envelope.
func Recovered(c *gin.Context, recovered any) {
	logger.FromContext(c.Request.Context()).
		WithField("panic", recovered).
		Error("Unhandled error")

	result := models.Fail[any](http.StatusInternalServerError, "Internal server error", fmt.Sprint(recovered))
	c.AbortWithStatusJSON(result.StatusCode, result)
}
