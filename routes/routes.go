package routes

import (
	"net/http"
	"time"

	"nafis/handlers"
	"nafis/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AdminLogin)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/availability", hb.Availability)
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/next", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/back", hb.BackSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterCatalogRoutes registers the public treatment catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/:id", hb.GetService)
	}
}

// RegisterTestimonialRoutes registers the public review endpoints.
func RegisterTestimonialRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/testimonials")
	{
		api.GET("", hb.ListTestimonials)
		api.POST("", hb.SubmitTestimonial)
	}
}

// RegisterContactRoutes registers the contact form and newsletter endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact)
	r.POST("/api/newsletter", hb.Newsletter)
}

// RegisterSettingsRoute registers the public settings endpoint.
func RegisterSettingsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/settings", hb.GetSettings)
}

// RegisterAttachmentRoutes registers the booking attachment endpoints.
func RegisterAttachmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/attachments")
	{
		api.POST("", hb.UploadAttachment)
		api.DELETE("/:publicID", hb.DeleteAttachment)
	}
}

// RegisterAdminRoutes sets up endpoints for the admin dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/bookings", hb.AdminListBookings)
		adminGroup.PATCH("/bookings/:id/status", hb.AdminUpdateBookingStatus)
		adminGroup.DELETE("/bookings/:id", hb.AdminDeleteBooking)
		adminGroup.GET("/analytics", hb.AdminAnalytics)
		adminGroup.POST("/services", hb.AdminCreateService)
		adminGroup.PUT("/services/:id", hb.AdminUpdateService)
		adminGroup.DELETE("/services/:id", hb.AdminDeleteService)
		adminGroup.GET("/testimonials", hb.AdminListTestimonials)
		adminGroup.PUT("/testimonials/:id/verify", hb.AdminVerifyTestimonial)
		adminGroup.DELETE("/testimonials/:id", hb.AdminDeleteTestimonial)
		adminGroup.PUT("/settings", hb.AdminUpdateSettings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Nafis Reflexology API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterTestimonialRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterSettingsRoute(r, hb)
	RegisterAttachmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
