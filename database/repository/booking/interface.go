// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"nafis/database"
	"nafis/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a booking id does not exist in the store.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the persistence sink for finalized bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	Create(ctx context.Context, booking models.Booking) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("nafis")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
