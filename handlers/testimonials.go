package handlers

import (
	"net/http"

	"nafis/services/testimonials"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// ListTestimonialsHandler returns verified reviews for the public site.
func ListTestimonialsHandler(svc testimonials.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), false)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to list testimonials", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"testimonials": list})
	}
}

// SubmitTestimonialHandler accepts a new review, pending verification.
func SubmitTestimonialHandler(svc testimonials.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input testimonials.SubmitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		created, err := svc.Submit(c.Request.Context(), input)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Submission rejected", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
