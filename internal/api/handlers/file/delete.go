package file

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Delete moves a file to the trash. The object stays in storage until
// the file is purged.
func Delete(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id := c.Param("id")

	if err := services.SoftDeleteFile(userID, id); err != nil {
		handlers.RespondError(c, err)
		return
	}

	if err := services.PublishEvent("files.deleted", map[string]interface{}{
		"file_id":  id,
		"owner_id": userID,
	}); err != nil {
		log.Printf("warning: failed to publish files.deleted event: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "file moved to trash"})
}
