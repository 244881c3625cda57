// File: services/notification/interface.go
package notification

import (
	"context"

	"nafis/models"
)

// ContactMessage is a message submitted through the site's contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmailService sends the spa's transactional email.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
	SendBookingReminder(ctx context.Context, booking models.Booking) error
	SendContactMessage(ctx context.Context, msg ContactMessage) error
	SendNewsletterWelcome(ctx context.Context, email string) error
}
