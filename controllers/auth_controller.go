package controllers

import (
	"net/http"
	"strings"

	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ac.Auth.VerifyCredentials(username, payload.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	token, err := ac.Auth.IssueToken(user)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// POST /api/auth/logout
// Tokens are stateless; logout is an acknowledgement and the client discards
// its token.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.JSONMessage(c, http.StatusOK, "Logged out")
}
