package handler

import (
	"simplenotes/dto"
	"simplenotes/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheckHandler serves both /health and the root path.
func HealthCheckHandler(c *gin.Context) {
	utils.Success(c, dto.HealthResponse{Status: "ok"})
}
