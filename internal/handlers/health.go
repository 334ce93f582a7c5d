package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"pms-project-backend/internal/models"
)

// Pinger is implemented by anything that can tell whether the database is up.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

// NewHealthHandler accepts a nil db, in which case the database is reported
// as "disabled".
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Produce     json
// @Success     200 {object} models.Result[models.HealthStatus]
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := models.HealthStatus{Status: "Server is running", Database: "disabled"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status.Database = "down"
		} else {
			status.Database = "up"
		}
	}

	c.JSON(http.StatusOK, models.OK(http.StatusOK, status, "Health check passed", "Server is operational"))
}
