package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

func Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	token, err := services.IssueSessionToken(user.ID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}
