package models

import "time"

// Testimonial is a client review shown on the site once verified.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Verified  bool      `bson:"verified" json:"verified"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
