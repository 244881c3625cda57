package handlers

import (
	"errors"
	"net/http"

	bookingRepo "nafis/database/repository/booking"
	"nafis/models"
	"nafis/services/analytics"
	"nafis/services/catalog"
	"nafis/services/testimonials"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// AdminListBookingsHandler returns every booking for the dashboard, newest
// first as the repository orders them.
func AdminListBookingsHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := repo.List(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// AdminUpdateBookingStatusHandler transitions a booking's status.
func AdminUpdateBookingStatusHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		if !models.ValidBookingStatus(input.Status) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid status", input.Status)
			return
		}

		updated, err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// AdminDeleteBookingHandler removes a booking outright.
func AdminDeleteBookingHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := repo.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
	}
}

// AdminAnalyticsHandler returns the dashboard summary.
func AdminAnalyticsHandler(svc analytics.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute analytics", err.Error())
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// AdminCreateServiceHandler adds a catalog entry.
func AdminCreateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Service
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		created, err := svc.CreateService(c.Request.Context(), input)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Create rejected", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// AdminUpdateServiceHandler replaces a catalog entry.
func AdminUpdateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Service
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		input.ID = c.Param("id")
		updated, err := svc.UpdateService(c.Request.Context(), input)
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", input.ID)
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Update rejected", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// AdminDeleteServiceHandler removes a catalog entry.
func AdminDeleteServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteService(c.Request.Context(), c.Param("id"))
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
	}
}

// AdminListTestimonialsHandler returns every review, verified or not.
func AdminListTestimonialsHandler(svc testimonials.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), true)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to list testimonials", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"testimonials": list})
	}
}

// AdminVerifyTestimonialHandler marks a review as verified.
func AdminVerifyTestimonialHandler(svc testimonials.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Verify(c.Request.Context(), c.Param("id"))
		if errors.Is(err, testimonials.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to verify testimonial", err.Error())
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// AdminDeleteTestimonialHandler removes a review.
func AdminDeleteTestimonialHandler(svc testimonials.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, testimonials.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete testimonial", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
	}
}
