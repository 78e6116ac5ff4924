package controllers

import (
	"net/http"
	"strings"

	"spiderhome-backend/services"
	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login handles POST /api/admin/login. All credential failures share one
// generic message; lockout is checked before the password.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	result := ac.Auth.Authenticate(username, payload.Password, c.ClientIP())
	if !result.Success {
		utils.JSONError(c, http.StatusUnauthorized, result.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
		"token":   result.Token,
	})
}
