package folder

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Purge permanently removes a trashed folder, its subtree and the
// stored objects. There is no undo.
func Purge(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id := c.Param("id")

	if err := services.PurgeFolder(userID, id); err != nil {
		handlers.RespondError(c, err)
		return
	}

	if err := services.PublishEvent("folders.purged", map[string]interface{}{
		"folder_id": id,
		"owner_id":  userID,
	}); err != nil {
		log.Printf("warning: failed to publish folders.purged event: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "folder permanently deleted"})
}
