// File: database/repository/booking/fallback.go
package bookingRepo

import (
	"context"
	"errors"

	"nafis/models"
	"nafis/utils"

	"go.uber.org/zap"
)

type fallbackBookingRepo struct {
	primary  BookingRepository
	fallback BookingRepository
}

// NewFallbackBookingRepo decorates primary so that any infrastructure error
// is retried against fallback. ErrNotFound is a domain answer, not an
// outage, and is never rerouted.
func NewFallbackBookingRepo(primary, fallback BookingRepository) BookingRepository {
	return &fallbackBookingRepo{primary: primary, fallback: fallback}
}

func (r *fallbackBookingRepo) shouldFallBack(op string, err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) {
		return false
	}
	utils.GetLogger().Warn("primary booking store unavailable, using fallback store",
		zap.String("op", op), zap.Error(err))
	return true
}

func (r *fallbackBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := r.primary.List(ctx)
	if r.shouldFallBack("list", err) {
		return r.fallback.List(ctx)
	}
	return bookings, err
}

func (r *fallbackBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := r.primary.GetByID(ctx, id)
	if r.shouldFallBack("get", err) {
		return r.fallback.GetByID(ctx, id)
	}
	return booking, err
}

func (r *fallbackBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := r.primary.ListByDate(ctx, date)
	if r.shouldFallBack("listByDate", err) {
		return r.fallback.ListByDate(ctx, date)
	}
	return bookings, err
}

func (r *fallbackBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	err := r.primary.Create(ctx, booking)
	if r.shouldFallBack("create", err) {
		return r.fallback.Create(ctx, booking)
	}
	return err
}

func (r *fallbackBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	booking, err := r.primary.UpdateStatus(ctx, id, status)
	if r.shouldFallBack("updateStatus", err) {
		return r.fallback.UpdateStatus(ctx, id, status)
	}
	return booking, err
}

func (r *fallbackBookingRepo) Delete(ctx context.Context, id string) error {
	err := r.primary.Delete(ctx, id)
	if r.shouldFallBack("delete", err) {
		return r.fallback.Delete(ctx, id)
	}
	return err
}
