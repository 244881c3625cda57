package models

import "time"

// Service categories offered by the spa.
const (
	CategoryRelaxation  = "relaxation"
	CategoryTherapeutic = "therapeutic"
	CategoryWellness    = "wellness"
	CategoryPremium     = "premium"
)

// Service is a bookable catalog entry (a reflexology treatment).
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description" json:"description"`
	Category        string    `bson:"category" json:"category"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
	IsPopular       bool      `bson:"isPopular" json:"isPopular"`
	IsFeatured      bool      `bson:"isFeatured" json:"isFeatured"`
	SortOrder       int       `bson:"sortOrder" json:"sortOrder"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Snapshot returns the immutable view of the service stored on bookings.
func (s Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.Category,
	}
}

// ServiceFilter narrows catalog listings.
type ServiceFilter struct {
	Category string
	Popular  bool
	Featured bool
	Page     int
	Limit    int
}

// ServicePage is a paginated catalog listing.
type ServicePage struct {
	Services   []Service  `json:"services"`
	Pagination Pagination `json:"pagination"`
}

// Pagination mirrors the shape the site's client expects.
type Pagination struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}
