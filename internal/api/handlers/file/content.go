package file

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Content streams the object bytes straight through the API.
func Content(c *gin.Context) {
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

	stream, err := minioService.GetObjectStream(record.StoragePath)
	if err != nil {
		handlers.RespondError(c, services.ErrStorageUnavailable)
		return
	}
	defer stream.Close()

	contentType := record.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	extraHeaders := map[string]string{
		"Content-Disposition": `attachment; filename="` + record.Name + `"`,
	}
	c.DataFromReader(http.StatusOK, record.Size, contentType, stream, extraHeaders)
}
