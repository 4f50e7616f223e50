package share

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

var (
	publicBaseURL string
	linkTTL       time.Duration
)

func Init(baseURL string, ttl time.Duration) {
	publicBaseURL = baseURL
	linkTTL = ttl
}

// CreateLink mints a public, expiring link token for a folder.
func CreateLink(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	folderID := c.Param("id")

	link, err := services.CreateLinkShare(userID, folderID, linkTTL)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":      link.Token,
		"url":        publicBaseURL + "/public/" + link.Token,
		"expires_at": link.ExpiresAt,
	})
}
