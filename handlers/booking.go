package handlers

import (
	"errors"
	"net/http"

	"nafis/services/booking"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// InitiateSessionHandler creates a new booking wizard session.
func InitiateSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Initiate(c.Request.Context())
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// GetSessionHandler returns the current wizard state, with slots recomputed.
func GetSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// UpdateSessionHandler applies partial draft changes to a session.
func UpdateSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input booking.UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		view, err := svc.Update(c.Request.Context(), c.Param("sessionID"), input)
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// AdvanceSessionHandler moves the wizard to the next step.
func AdvanceSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Advance(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// BackSessionHandler moves the wizard to the previous step.
func BackSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Back(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// ConfirmBookingHandler finalizes the session into a persisted booking.
func ConfirmBookingHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.Confirm(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking": b})
	}
}

// CancelSessionHandler discards an in-progress session.
func CancelSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
	}
}

// AvailabilityHandler returns the bookable slots for a date.
func AvailabilityHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter 'date' is required")
			return
		}
		slots, err := svc.AvailableSlots(c.Request.Context(), date)
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
	}
}

// bookingError maps wizard errors onto HTTP statuses.
func bookingError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var serr *booking.SlotUnavailableError
	var suberr *booking.SubmissionError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", "the booking session is unknown or has expired")
	case errors.Is(err, booking.ErrSessionComplete):
		utils.JSONError(c, http.StatusConflict, "Session complete", "this booking session has already been confirmed")
	case errors.Is(err, booking.ErrConfirmRequired):
		utils.JSONError(c, http.StatusConflict, "Confirm required", err.Error())
	case errors.As(err, &serr):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", serr.Error())
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", verr.Error())
	case errors.As(err, &suberr):
		utils.JSONError(c, http.StatusServiceUnavailable, "Submission failed", "could not save the booking, please try again")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
