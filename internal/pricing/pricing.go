// Package pricing is the pure calculation core of the rental business:
// rental duration, weekend package detection, price suggestion, included
// mileage, owner payouts, charge normalization and monthly profit
// aggregation. It performs no I/O and holds no state; callers supply
// immutable snapshots and re-invoke on every data change.
package pricing

import (
	"math"
	"time"

	"autoloc-backend/internal/domain"
)

const hoursPerDay = 24

// Weekend package bounds: pickup Friday from 17:00, return Sunday until 21:00.
const (
	weekendStartHour = 17
	weekendEndHour   = 21
)

// RentalDays returns the number of billable days between two calendar dates,
// time-of-day ignored: ceil(|end - start| / 24h) with a floor of 1, so a
// same-day rental still bills one day.
//
// Ordering is deliberately not validated here; a backward range yields the
// same count as the forward one. Save-time validation compares the full
// date+time instants and rejects inverted ranges before pricing runs.
func RentalDays(start, end time.Time) int {
	s := truncateToDate(start)
	e := truncateToDate(end)
	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / hoursPerDay))
	if days < 1 {
		days = 1
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekendPackage reports whether the span qualifies for the flat weekend
// rate: pickup on a Friday at or after 17:00 and return on a Sunday at or
// before 21:00. The bounds are strict; a rental that merely overlaps a
// weekend (Saturday morning to Monday morning) does not qualify.
func IsWeekendPackage(start, end time.Time) bool {
	return start.Weekday() == time.Friday && start.Hour() >= weekendStartHour &&
		end.Weekday() == time.Sunday && end.Hour() <= weekendEndHour
}

// SuggestedPrice computes the default rental price for a vehicle over a span:
// the flat weekend package rate when the span qualifies and the vehicle has
// one (not multiplied by day count), otherwise daily rate × days, otherwise 0
// when no rate is configured. The result is only a seed; the user may always
// override it.
func SuggestedPrice(v *domain.Vehicle, start, end time.Time) float64 {
	if IsWeekendPackage(start, end) && v.WeekendRate > 0 {
		return v.WeekendRate
	}
	if v.DailyRate > 0 {
		return v.DailyRate * float64(RentalDays(start, end))
	}
	return 0
}

// IncludedMileage returns the total mileage allowance for a rental: per-day
// allowance × day count, or unlimited when the vehicle has no cap (in which
// case the per-km overage fee does not apply at all).
func IncludedMileage(v *domain.Vehicle, days int) domain.Mileage {
	return v.IncludedKmPerDay.Times(days)
}

// Quote bundles the derived figures a reservation form needs.
type Quote struct {
	Days           int            `json:"days"`
	WeekendPackage bool           `json:"weekend_package"`
	SuggestedPrice float64        `json:"suggested_price"`
	IncludedKm     domain.Mileage `json:"included_km"`
}

// QuoteReservation evaluates all suggestion components for a vehicle and span.
func QuoteReservation(v *domain.Vehicle, start, end time.Time) Quote {
	days := RentalDays(start, end)
	return Quote{
		Days:           days,
		WeekendPackage: IsWeekendPackage(start, end),
		SuggestedPrice: SuggestedPrice(v, start, end),
		IncludedKm:     IncludedMileage(v, days),
	}
}
