// File: database/repository/testimonial/testimonial_mongo.go
package testimonialRepo

import (
	"context"
	"errors"
	"time"

	"nafis/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTestimonialRepo) List(ctx context.Context, verifiedOnly bool) ([]models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if verifiedOnly {
		query["verified"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *mongoTestimonialRepo) Create(ctx context.Context, t models.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTestimonialRepo) SetVerified(ctx context.Context, id string, verified bool) (*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"verified": verified}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t models.Testimonial
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTestimonialRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTestimonialRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
