package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := services.RegisterUser(req.Email, req.Password)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	token, err := services.IssueSessionToken(user.ID)
	if err != nil {
		log.Printf("Error issuing token for new user %s: %v", user.ID, err)
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}
