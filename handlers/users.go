package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railway-booking/models"
	"railway-booking/services"
)

// CreateUser handles POST /api/users
func CreateUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetUser handles GET /api/users?email=; an unknown email returns a
// null user, not an error
func GetUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	user, err := services.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
