// File: database/repository/service/service_mongo.go
package serviceRepo

import (
	"context"
	"errors"
	"time"

	"nafis/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoServiceRepo) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Popular {
		query["isPopular"] = true
	}
	if filter.Featured {
		query["isFeatured"] = true
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return services, int(total), nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *mongoServiceRepo) Create(ctx context.Context, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, svc)
	return err
}

func (r *mongoServiceRepo) Update(ctx context.Context, svc models.Service) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var updated models.Service
	err := r.coll.FindOneAndReplace(ctx, bson.M{"id": svc.ID}, svc, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoServiceRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
