// File: database/repository/testimonial/interface.go
package testimonialRepo

import (
	"context"
	"errors"

	"nafis/database"
	"nafis/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a testimonial id does not exist.
var ErrNotFound = errors.New("testimonial not found")

// TestimonialRepository stores client reviews.
type TestimonialRepository interface {
	List(ctx context.Context, verifiedOnly bool) ([]models.Testimonial, error)
	Create(ctx context.Context, t models.Testimonial) error
	SetVerified(ctx context.Context, id string, verified bool) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo constructs a MongoDB-backed TestimonialRepository.
func NewMongoTestimonialRepo() TestimonialRepository {
	db := database.MongoClient.Database("nafis")
	return &mongoTestimonialRepo{
		coll: db.Collection("testimonials"),
	}
}
