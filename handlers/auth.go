package handlers

import (
	"net/http"
	"strings"
	"time"

	"nafis/config"
	"nafis/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// adminTokenTTL is how long a dashboard login stays valid.
const adminTokenTTL = 24 * time.Hour

// AdminLoginHandler authenticates the dashboard admin and issues a JWT.
// The configured password is hashed once at startup so comparisons run
// against a bcrypt digest rather than the raw value.
func AdminLoginHandler() gin.HandlerFunc {
	passwordHash, err := utils.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		utils.GetLogger().Fatal("Failed to hash admin password", zap.Error(err))
	}
	adminEmail := strings.ToLower(config.AppConfig.AdminEmail)

	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}

		if strings.ToLower(input.Email) != adminEmail || !utils.CheckPassword(passwordHash, input.Password) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "email or password is incorrect")
			return
		}

		token, err := utils.GenerateToken("admin", adminEmail, "admin", adminTokenTTL)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     token,
			"expiresIn": int(adminTokenTTL.Seconds()),
		})
	}
}
