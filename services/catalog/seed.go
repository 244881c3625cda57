// File: services/catalog/seed.go
package catalog

import (
	"time"

	"nafis/models"
)

// SampleServices is the initial treatment catalog for a fresh deployment.
func SampleServices() []models.Service {
	now := time.Now()
	return []models.Service{
		{
			ID:              "relaxation-reflexology",
			Name:            "Relaxation Reflexology",
			Description:     "A gentle, soothing reflexology session designed to promote deep relaxation and stress relief.",
			Category:        models.CategoryRelaxation,
			DurationMinutes: 60,
			Price:           75,
			IsActive:        true,
			IsPopular:       true,
			IsFeatured:      true,
			SortOrder:       1,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "deep-tissue-foot-work",
			Name:            "Deep Tissue Foot Work",
			Description:     "Intensive reflexology treatment targeting deep-seated tension and chronic foot issues.",
			Category:        models.CategoryTherapeutic,
			DurationMinutes: 90,
			Price:           95,
			IsActive:        true,
			IsPopular:       false,
			IsFeatured:      true,
			SortOrder:       2,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "meridian-focused-healing",
			Name:            "Meridian-Focused Healing",
			Description:     "Traditional Chinese Medicine-based reflexology targeting energy meridians for holistic healing.",
			Category:        models.CategoryPremium,
			DurationMinutes: 120,
			Price:           125,
			IsActive:        true,
			IsPopular:       false,
			IsFeatured:      false,
			SortOrder:       3,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
