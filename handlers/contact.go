package handlers

import (
	"net/http"
	"strings"

	"nafis/services/notification"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler forwards a contact form message to the spa's inbox.
func ContactHandler(emailSvc notification.EmailService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg notification.ContactMessage
		if err := c.ShouldBindJSON(&msg); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		if msg.Name == "" || msg.Email == "" || msg.Message == "" {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "name, email and message are required")
			return
		}
		if msg.Subject == "" {
			msg.Subject = "General inquiry"
		}

		if err := emailSvc.SendContactMessage(c.Request.Context(), msg); err != nil {
			utils.JSONError(c, http.StatusBadGateway, "Failed to send message", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Thank you for reaching out. We'll get back to you soon."})
	}
}

// NewsletterHandler subscribes an address to the newsletter.
func NewsletterHandler(emailSvc notification.EmailService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		email := strings.TrimSpace(input.Email)
		if email == "" || !strings.Contains(email, "@") {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "a valid email is required")
			return
		}

		if err := emailSvc.SendNewsletterWelcome(c.Request.Context(), email); err != nil {
			utils.JSONError(c, http.StatusBadGateway, "Failed to subscribe", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscribed. Welcome aboard!"})
	}
}
