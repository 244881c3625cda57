package models

import "time"

// Booking statuses. A booking is created as "confirmed"; "completed" and
// "cancelled" are reachable only through admin actions.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ServiceSnapshot captures the catalog entry at the moment it was chosen,
// so later catalog edits do not rewrite existing bookings.
type ServiceSnapshot struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Category        string  `bson:"category" json:"category"`
}

// ContactInfo holds the client details collected in the wizard.
type ContactInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Attachment is a reference to an uploaded file (Cloudinary public ID + URL).
type Attachment struct {
	PublicID string `bson:"publicId" json:"publicId"`
	URL      string `bson:"url" json:"url"`
	Name     string `bson:"name" json:"name"`
	Size     int64  `bson:"size" json:"size"`
}

// BookingDraft is the in-progress booking accumulated across wizard steps.
// It is replaced as a whole on every update rather than mutated in place.
type BookingDraft struct {
	Service     *ServiceSnapshot `bson:"service,omitempty" json:"service,omitempty"`
	Date        string           `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	Time        string           `bson:"time,omitempty" json:"time,omitempty"` // "HH:MM"
	Contact     ContactInfo      `bson:"contact" json:"contact"`
	Preferences []string         `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Attachments []Attachment     `bson:"attachments,omitempty" json:"attachments,omitempty"`
}

// Booking is a finalized, persisted appointment.
type Booking struct {
	ID          string          `bson:"id" json:"id"`
	Service     ServiceSnapshot `bson:"service" json:"service"`
	Date        string          `bson:"date" json:"date"`
	Time        string          `bson:"time" json:"time"`
	Contact     ContactInfo     `bson:"contact" json:"contact"`
	Preferences []string        `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Attachments []Attachment    `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Amount      float64         `bson:"amount" json:"amount"`
	Status      string          `bson:"status" json:"status"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// StartsAt resolves the booking's appointment date and time in loc.
func (b Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
}
