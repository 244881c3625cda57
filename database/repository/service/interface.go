// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"
	"errors"

	"nafis/database"
	"nafis/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a service id does not exist.
var ErrNotFound = errors.New("service not found")

// ServiceRepository stores the treatment catalog.
type ServiceRepository interface {
	List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, int, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, svc models.Service) error
	Update(ctx context.Context, svc models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB-backed ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("nafis")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
