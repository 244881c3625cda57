// Package availability computes bookable time slots for a calendar date.
package availability

import (
	"errors"
	"fmt"
	"time"
)

// ErrPastDate is returned when slots are requested for a day before today.
// The booking UI only offers dates from today forward, so this is a guard
// against malformed API input rather than a reachable user state.
var ErrPastDate = errors.New("availability: target date is in the past")

// BusinessHours are the inclusive opening and closing hour bounds within
// which slots are generated.
type BusinessHours struct {
	OpenHour  int
	CloseHour int
}

// Calculator produces the ordered slot sequence for a date. It is a pure
// function of (target, now, hours): no clock reads, no side effects.
type Calculator struct {
	Hours BusinessHours
}

// NewCalculator returns a Calculator for the given business hours.
func NewCalculator(hours BusinessHours) Calculator {
	return Calculator{Hours: hours}
}

// SlotsFor returns the ascending "HH:MM" slot sequence for target as of now.
//
// Slots run at 30-minute granularity from OpenHour through CloseHour; the
// closing hour contributes only its ":00" slot (hours 9..18 yield 19 slots).
// When target is today, generation starts at max(OpenHour, now.Hour()+1) and
// the current hour's half slot is dropped once now's minute reaches 30, so
// every returned slot is strictly after now. Future dates get the full
// sequence.
func (c Calculator) SlotsFor(target, now time.Time) ([]string, error) {
	if beforeDay(target, now) {
		return nil, ErrPastDate
	}

	isToday := SameDay(target, now)
	startHour := c.Hours.OpenHour
	if isToday && now.Hour()+1 > startHour {
		startHour = now.Hour() + 1
	}

	slots := []string{}
	for hour := startHour; hour <= c.Hours.CloseHour; hour++ {
		if isToday && hour == now.Hour() && now.Minute() >= 30 {
			continue
		}

		slots = append(slots, fmt.Sprintf("%02d:00", hour))

		if hour < c.Hours.CloseHour {
			if !isToday || hour > now.Hour() || (hour == now.Hour() && now.Minute() < 30) {
				slots = append(slots, fmt.Sprintf("%02d:30", hour))
			}
		}
	}
	return slots, nil
}

// Window returns the forward calendar window of bookable dates starting
// today: days entries at midnight in now's location.
func (c Calculator) Window(now time.Time, days int) []time.Time {
	dates := make([]time.Time, 0, days)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < days; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// InWindow reports whether target falls inside the bookable window of days
// starting at now's calendar day.
func (c Calculator) InWindow(target, now time.Time, days int) bool {
	if beforeDay(target, now) {
		return false
	}
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, days-1)
	return !beforeDay(last, target)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// beforeDay reports whether a's calendar day is strictly before b's.
func beforeDay(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}
