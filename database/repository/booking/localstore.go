// File: database/repository/booking/localstore.go
package bookingRepo

import (
	"context"
	"encoding/json"
	"time"

	"nafis/models"

	"github.com/go-redis/redis/v8"
)

// localStoreKey is the fixed collection key the fallback store lives under,
// mirroring the client-side store the site used when the API was down.
const localStoreKey = "bookings"

type localBookingStore struct {
	client *redis.Client
}

// NewLocalBookingStore constructs the Redis-backed fallback store. The whole
// collection is serialized under one key and read-modify-written, which is
// not atomic; it is a best-effort sink for when the primary store is down.
func NewLocalBookingStore(client *redis.Client) BookingRepository {
	return &localBookingStore{client: client}
}

func (s *localBookingStore) load(ctx context.Context) ([]models.Booking, error) {
	raw, err := s.client.Get(ctx, localStoreKey).Result()
	if err == redis.Nil {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *localBookingStore) save(ctx context.Context, bookings []models.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, localStoreKey, raw, 0).Err()
}

func (s *localBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	return s.load(ctx)
}

func (s *localBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *localBookingStore) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Booking{}
	for _, b := range bookings {
		if b.Date == date {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *localBookingStore) Create(ctx context.Context, booking models.Booking) error {
	bookings, err := s.load(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)
	return s.save(ctx, bookings)
}

func (s *localBookingStore) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			bookings[i].UpdatedAt = time.Now()
			if err := s.save(ctx, bookings); err != nil {
				return nil, err
			}
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *localBookingStore) Delete(ctx context.Context, id string) error {
	bookings, err := s.load(ctx)
	if err != nil {
		return err
	}
	remaining := bookings[:0]
	found := false
	for _, b := range bookings {
		if b.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, b)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(ctx, remaining)
}
