// File: nafis/handlers/bundle.go
package handlers

import (
	bookingRepoPkg "nafis/database/repository/booking"
	"nafis/services/analytics"
	"nafis/services/booking"
	"nafis/services/catalog"
	"nafis/services/notification"
	"nafis/services/settings"
	"nafis/services/storage"
	"nafis/services/testimonials"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	AdminLogin gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	AdvanceSession  gin.HandlerFunc
	BackSession     gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	Availability    gin.HandlerFunc

	// Catalog endpoints
	ListServices gin.HandlerFunc
	GetService   gin.HandlerFunc

	// Testimonial endpoints
	ListTestimonials  gin.HandlerFunc
	SubmitTestimonial gin.HandlerFunc

	// Contact endpoints
	Contact    gin.HandlerFunc
	Newsletter gin.HandlerFunc

	// Settings endpoint
	GetSettings gin.HandlerFunc

	// Attachment endpoints
	UploadAttachment gin.HandlerFunc
	DeleteAttachment gin.HandlerFunc

	// Admin endpoints
	AdminListBookings        gin.HandlerFunc
	AdminUpdateBookingStatus gin.HandlerFunc
	AdminDeleteBooking       gin.HandlerFunc
	AdminAnalytics           gin.HandlerFunc
	AdminCreateService       gin.HandlerFunc
	AdminUpdateService       gin.HandlerFunc
	AdminDeleteService       gin.HandlerFunc
	AdminListTestimonials    gin.HandlerFunc
	AdminVerifyTestimonial   gin.HandlerFunc
	AdminDeleteTestimonial   gin.HandlerFunc
	AdminUpdateSettings      gin.HandlerFunc
}

// Deps are the services the handlers close over.
type Deps struct {
	Wizard       booking.WizardService
	Bookings     bookingRepoPkg.BookingRepository
	Catalog      catalog.CatalogService
	Testimonials testimonials.TestimonialService
	Settings     settings.SettingsService
	Analytics    analytics.AnalyticsService
	Email        notification.EmailService
	Storage      storage.StorageService
}

// NewHandlerBundle builds every handler from the wired services.
func NewHandlerBundle(d Deps) *HandlerBundle {
	return &HandlerBundle{
		AdminLogin: AdminLoginHandler(),

		InitiateSession: InitiateSessionHandler(d.Wizard),
		GetSession:      GetSessionHandler(d.Wizard),
		UpdateSession:   UpdateSessionHandler(d.Wizard),
		AdvanceSession:  AdvanceSessionHandler(d.Wizard),
		BackSession:     BackSessionHandler(d.Wizard),
		ConfirmBooking:  ConfirmBookingHandler(d.Wizard),
		CancelSession:   CancelSessionHandler(d.Wizard),
		Availability:    AvailabilityHandler(d.Wizard),

		ListServices: ListServicesHandler(d.Catalog),
		GetService:   GetServiceHandler(d.Catalog),

		ListTestimonials:  ListTestimonialsHandler(d.Testimonials),
		SubmitTestimonial: SubmitTestimonialHandler(d.Testimonials),

		Contact:    ContactHandler(d.Email),
		Newsletter: NewsletterHandler(d.Email),

		GetSettings: GetSettingsHandler(d.Settings),

		UploadAttachment: UploadAttachmentHandler(d.Storage),
		DeleteAttachment: DeleteAttachmentHandler(d.Storage),

		AdminListBookings:        AdminListBookingsHandler(d.Bookings),
		AdminUpdateBookingStatus: AdminUpdateBookingStatusHandler(d.Bookings),
		AdminDeleteBooking:       AdminDeleteBookingHandler(d.Bookings),
		AdminAnalytics:           AdminAnalyticsHandler(d.Analytics),
		AdminCreateService:       AdminCreateServiceHandler(d.Catalog),
		AdminUpdateService:       AdminUpdateServiceHandler(d.Catalog),
		AdminDeleteService:       AdminDeleteServiceHandler(d.Catalog),
		AdminListTestimonials:    AdminListTestimonialsHandler(d.Testimonials),
		AdminVerifyTestimonial:   AdminVerifyTestimonialHandler(d.Testimonials),
		AdminDeleteTestimonial:   AdminDeleteTestimonialHandler(d.Testimonials),
		AdminUpdateSettings:      UpdateSettingsHandler(d.Settings),
	}
}
