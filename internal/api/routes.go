package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/cmd/middleware"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/auth"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/file"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/folder"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/search"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/share"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/trash"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, PATCH, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

func RegisterRoutes(r *gin.Engine) {
	// Enable CORS for preflight requests
	r.Use(corsMiddleware())

	// Anonymous access to link-shared folders
	r.GET("/public/:token", share.ResolveLink)

	open := r.Group("/api")
	{
		open.GET("/health", handlers.HealthCheck)

		open.POST("/auth/register", auth.Register)
		open.POST("/auth/login", auth.Login)
	}

	authed := r.Group("/api")
	authed.Use(middleware.RequireAuth())
	{
		// Folder endpoints
		authed.POST("/folders", folder.Create)
		authed.GET("/folders", folder.List)
		authed.GET("/folders/:id", folder.Get)
		authed.DELETE("/folders/:id", folder.Delete)        // move to trash
		authed.POST("/folders/:id/restore", folder.Restore) // bring back from trash
		authed.DELETE("/folders/:id/purge", folder.Purge)   // permanent

		// File endpoints
		authed.POST("/files/upload", file.Upload)
		authed.GET("/files", file.List)
		authed.GET("/files/:id", file.Get)
		authed.GET("/files/:id/download", file.Download) // presigned URL
		authed.GET("/files/:id/content", file.Content)   // streamed bytes
		authed.DELETE("/files/:id", file.Delete)         // move to trash
		authed.POST("/files/:id/restore", file.Restore)
		authed.DELETE("/files/:id/purge", file.Purge)

		// Trash and sharing
		authed.GET("/trash", trash.List)
		authed.POST("/shares", share.Create)
		authed.GET("/shared", share.SharedWithMe)
		authed.POST("/public/create/:id", share.CreateLink)

		// Search and stats
		authed.GET("/search", search.Search)
		authed.GET("/stats", file.GetMyFileStats)
	}
}
