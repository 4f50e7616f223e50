package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// UserIDFromContext reads the authenticated user id set by the auth middleware.
func UserIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// RespondError maps service errors onto HTTP status codes.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":   "ok",
		"database": services.GetStats(),
	}

	if minioService := services.GetMinioService(); minioService != nil {
		if err := minioService.CheckConnection(); err != nil {
			status["status"] = "degraded"
			status["storage"] = "unreachable"
		} else {
			status["storage"] = "ok"
		}
	}

	c.JSON(http.StatusOK, status)
}
