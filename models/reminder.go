package models

// ReminderPayload is the queued task body for an appointment reminder email.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Booking reconstructs the subset of a booking the reminder email needs.
func (p ReminderPayload) Booking() Booking {
	return Booking{
		ID:      p.BookingID,
		Service: ServiceSnapshot{Name: p.ServiceName},
		Date:    p.Date,
		Time:    p.Time,
		Contact: ContactInfo{Name: p.Name, Email: p.Email},
	}
}
