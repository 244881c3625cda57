// File: services/notification/sendgrid.go
package notification

import (
	"context"
	"fmt"

	"nafis/config"
	"nafis/models"
	"nafis/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridEmailService sends email through the SendGrid API.
type SendGridEmailService struct {
	client     *sendgrid.Client
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewEmailService returns a SendGrid-backed EmailService, or a log-only
// service when no API key is configured so local development works without
// credentials.
func NewEmailService() EmailService {
	cfg := config.AppConfig
	if cfg.SendgridAPIKey == "" {
		utils.GetLogger().Warn("SENDGRID_API_KEY not set, email delivery disabled")
		return &logEmailService{}
	}
	return &SendGridEmailService{
		client:     sendgrid.NewSendClient(cfg.SendgridAPIKey),
		fromEmail:  cfg.EmailFrom,
		fromName:   cfg.EmailFromName,
		adminEmail: cfg.AdminEmail,
	}
}

func (s *SendGridEmailService) send(ctx context.Context, toName, toEmail, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notification: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notification: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

func (s *SendGridEmailService) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	subject := "Your booking at Nafis Reflexology is confirmed"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment is confirmed.\n\nService: %s\nDate: %s\nTime: %s\nDuration: %d minutes\nPrice: $%.2f\n\nBooking reference: %s\n\nWe look forward to seeing you.\n\nNafis Reflexology",
		b.Contact.Name, b.Service.Name, b.Date, b.Time, b.Service.DurationMinutes, b.Amount, b.ID,
	)
	return s.send(ctx, b.Contact.Name, b.Contact.Email, subject, body)
}

func (s *SendGridEmailService) SendBookingReminder(ctx context.Context, b models.Booking) error {
	subject := "Reminder: your appointment at Nafis Reflexology tomorrow"
	body := fmt.Sprintf(
		"Dear %s,\n\nA friendly reminder of your upcoming appointment.\n\nService: %s\nDate: %s\nTime: %s\n\nIf you need to reschedule, please get in touch.\n\nNafis Reflexology",
		b.Contact.Name, b.Service.Name, b.Date, b.Time,
	)
	return s.send(ctx, b.Contact.Name, b.Contact.Email, subject, body)
}

func (s *SendGridEmailService) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	subject := fmt.Sprintf("Contact form: %s", msg.Subject)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	return s.send(ctx, "Nafis Reflexology", s.adminEmail, subject, body)
}

func (s *SendGridEmailService) SendNewsletterWelcome(ctx context.Context, email string) error {
	subject := "Welcome to the Nafis Reflexology newsletter"
	body := "Thank you for subscribing. You'll hear from us with seasonal offers and wellness tips.\n\nNafis Reflexology"
	return s.send(ctx, "", email, subject, body)
}

// logEmailService stands in when SendGrid is not configured. Every send is
// recorded in the log and reported as success.
type logEmailService struct{}

func (l *logEmailService) SendBookingConfirmation(_ context.Context, b models.Booking) error {
	utils.GetLogger().Info("Email disabled, skipping booking confirmation",
		zap.String("booking_id", b.ID), zap.String("to", b.Contact.Email))
	return nil
}

func (l *logEmailService) SendBookingReminder(_ context.Context, b models.Booking) error {
	utils.GetLogger().Info("Email disabled, skipping booking reminder",
		zap.String("booking_id", b.ID), zap.String("to", b.Contact.Email))
	return nil
}

func (l *logEmailService) SendContactMessage(_ context.Context, msg ContactMessage) error {
	utils.GetLogger().Info("Email disabled, skipping contact message",
		zap.String("from", msg.Email))
	return nil
}

func (l *logEmailService) SendNewsletterWelcome(_ context.Context, email string) error {
	utils.GetLogger().Info("Email disabled, skipping newsletter welcome",
		zap.String("to", email))
	return nil
}
