package folder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// Get returns a single folder together with its direct contents.
func Get(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id := c.Param("id")

	folder, err := services.GetFolder(userID, id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	subfolders, err := services.ListFolders(userID, &folder.ID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	files, err := services.ListFiles(userID, &folder.ID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"folder":  folder,
		"folders": subfolders,
		"files":   files,
	})
}
