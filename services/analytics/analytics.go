// File: services/analytics/analytics.go
package analytics

import (
	"context"
	"sort"
	"time"

	bookingRepo "nafis/database/repository/booking"
	"nafis/models"
)

// popularLimit caps the popular-services list on the dashboard.
const popularLimit = 5

// AnalyticsService computes the admin dashboard aggregates.
type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
}

// DefaultAnalyticsService derives all figures from the booking collection on
// each call; the dataset is small enough that precomputation is not worth it.
type DefaultAnalyticsService struct {
	bookings bookingRepo.BookingRepository

	// now is swapped out in tests.
	now func() time.Time
}

// NewDefaultAnalyticsService wires the analytics service.
func NewDefaultAnalyticsService(bookings bookingRepo.BookingRepository) *DefaultAnalyticsService {
	return &DefaultAnalyticsService{
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *DefaultAnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekEnd := now.AddDate(0, 0, 7)

	summary := &models.AnalyticsSummary{
		TotalBookings: len(all),
		ByStatus:      map[string]int{},
	}
	counts := map[string]int{}

	for _, b := range all {
		summary.ByStatus[b.Status]++

		if b.Status == models.BookingStatusConfirmed || b.Status == models.BookingStatusCompleted {
			summary.Revenue += b.Amount
			counts[b.Service.Name]++
		}

		if b.Status == models.BookingStatusConfirmed {
			if starts, err := b.StartsAt(now.Location()); err == nil {
				if !starts.Before(now) && starts.Before(weekEnd) {
					summary.UpcomingWeek++
				}
			}
		}
	}

	for name, count := range counts {
		summary.PopularServices = append(summary.PopularServices, models.ServiceCount{
			ServiceName: name,
			Count:       count,
		})
	}
	sort.Slice(summary.PopularServices, func(i, j int) bool {
		a, b := summary.PopularServices[i], summary.PopularServices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ServiceName < b.ServiceName
	})
	if len(summary.PopularServices) > popularLimit {
		summary.PopularServices = summary.PopularServices[:popularLimit]
	}
	return summary, nil
}
