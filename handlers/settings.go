package handlers

import (
	"net/http"

	"nafis/models"
	"nafis/services/settings"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// GetSettingsHandler returns the site settings used by the client shell.
func GetSettingsHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Get(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load settings", err.Error())
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// UpdateSettingsHandler saves the site settings from the admin dashboard.
func UpdateSettingsHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Settings
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		saved, err := svc.Update(c.Request.Context(), input)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Update rejected", err.Error())
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
