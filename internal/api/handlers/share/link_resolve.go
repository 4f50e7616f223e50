package share

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

// ResolveLink serves a shared folder to anonymous visitors. Expired or
// revoked tokens look exactly like unknown ones.
func ResolveLink(c *gin.Context) {
	token := c.Param("token")

	folder, err := services.ResolveLinkShare(token)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	subfolders, err := services.ListFolders(folder.OwnerID, &folder.ID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	files, err := services.ListFiles(folder.OwnerID, &folder.ID)
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
