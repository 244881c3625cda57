// File: services/testimonials/seed.go
package testimonials

import (
	"time"

	"nafis/models"
)

// SampleTestimonials is the initial review set for a fresh deployment.
func SampleTestimonials() []models.Testimonial {
	now := time.Now()
	return []models.Testimonial{
		{
			ID:        "testimonial-sarah-johnson",
			Name:      "Sarah Johnson",
			Rating:    5,
			Comment:   "I've been coming to Nafis Reflexology for over a year now, and it's been life-changing. The relaxation sessions help me manage my stress levels, and I always leave feeling completely renewed. The atmosphere is so peaceful, and the staff is incredibly professional.",
			Date:      now.Format("2006-01-02"),
			Verified:  true,
			CreatedAt: now,
		},
		{
			ID:        "testimonial-michael-chen",
			Name:      "Michael Chen",
			Rating:    5,
			Comment:   "After struggling with chronic foot pain for months, the deep tissue session at Nafis Reflexology provided incredible relief. The therapist was knowledgeable and took the time to understand my specific issues. I highly recommend their therapeutic services.",
			Date:      now.Format("2006-01-02"),
			Verified:  true,
			CreatedAt: now,
		},
		{
			ID:        "testimonial-aisha-patel",
			Name:      "Aisha Patel",
			Rating:    5,
			Comment:   "The meridian-focused session was unlike anything I've experienced before. It's amazing how connected our feet are to our entire body. I felt a sense of balance and energy I haven't felt in years. This is truly holistic healing at its best.",
			Date:      now.Format("2006-01-02"),
			Verified:  true,
			CreatedAt: now,
		},
	}
}
