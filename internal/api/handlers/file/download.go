package file

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Signed URLs stay valid for five minutes.
const downloadURLTTL = 300 * time.Second

// Download returns a short-lived presigned URL for the object.
func Download(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id := c.Param("id")

	record, err := services.GetUploadedFile(userID, id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	minioService := services.GetMinioService()
	if minioService == nil {
		handlers.RespondError(c, services.ErrStorageUnavailable)
		return
	}

	url, err := minioService.PresignedDownloadURL(record.StoragePath, record.Name, downloadURLTTL)
	if err != nil {
		handlers.RespondError(c, services.ErrStorageUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"download_url": url,
		"expires_in":   int(downloadURLTTL.Seconds()),
	})
}
