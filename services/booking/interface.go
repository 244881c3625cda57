// File: services/booking/interface.go
package booking

import (
	"context"

	"nafis/models"
)

// SessionStore holds in-progress wizard sessions with a TTL.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, id string) error
}

// ConfirmationSender delivers the booking confirmation email.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
}

// ReminderScheduler queues an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking models.Booking) error
}

// UpdateInput carries partial draft changes; nil fields are left untouched.
type UpdateInput struct {
	ServiceID   *string              `json:"serviceId,omitempty"`
	Date        *string              `json:"date,omitempty"`
	Time        *string              `json:"time,omitempty"`
	Contact     *models.ContactInfo  `json:"contact,omitempty"`
	Preferences *[]string            `json:"preferences,omitempty"`
	Attachments *[]models.Attachment `json:"attachments,omitempty"`
}

// SessionView is the wizard state as presented to the client, including the
// recomputed slot list for the drafted date.
type SessionView struct {
	Session        models.BookingSession `json:"session"`
	AvailableSlots []string              `json:"availableSlots,omitempty"`
	SlotCleared    bool                  `json:"slotCleared,omitempty"`
}

// WizardService drives the four-step booking wizard.
type WizardService interface {
	Initiate(ctx context.Context) (*SessionView, error)
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	Get(ctx context.Context, sessionID string) (*SessionView, error)
	Update(ctx context.Context, sessionID string, input UpdateInput) (*SessionView, error)
	Advance(ctx context.Context, sessionID string) (*SessionView, error)
	Back(ctx context.Context, sessionID string) (*SessionView, error)
	Confirm(ctx context.Context, sessionID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
}
