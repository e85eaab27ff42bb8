package pricing

import (
	"testing"
	"time"

	"autoloc-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	t.Run("Same day counts as one", func(t *testing.T) {
		d := date(2024, time.March, 15, 0, 0)
		assert.Equal(t, 1, RentalDays(d, d))
	})

	t.Run("Two day span", func(t *testing.T) {
		assert.Equal(t, 2, RentalDays(date(2024, time.January, 1, 0, 0), date(2024, time.January, 3, 0, 0)))
	})

	t.Run("Time of day is ignored", func(t *testing.T) {
		// 1st 23:00 to 2nd 01:00 is under 24h but spans one calendar day.
		assert.Equal(t, 1, RentalDays(date(2024, time.June, 1, 23, 0), date(2024, time.June, 2, 1, 0)))
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		assert.Equal(t, 7, RentalDays(date(2024, time.January, 29, 10, 0), date(2024, time.February, 5, 10, 0)))
	})

	t.Run("Backward range is not validated here", func(t *testing.T) {
		assert.Equal(t, 2, RentalDays(date(2024, time.January, 3, 0, 0), date(2024, time.January, 1, 0, 0)))
	})
}

func TestIsWeekendPackage(t *testing.T) {
	// 2024-06-07 is a Friday, 2024-06-09 a Sunday.
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"Friday 18h to Sunday 20h", date(2024, time.June, 7, 18, 0), date(2024, time.June, 9, 20, 0), true},
		{"Friday 17h sharp to Sunday 21h sharp", date(2024, time.June, 7, 17, 0), date(2024, time.June, 9, 21, 0), true},
		{"Friday 16h59 start is too early", date(2024, time.June, 7, 16, 59), date(2024, time.June, 9, 20, 0), false},
		{"Sunday 22h return is too late", date(2024, time.June, 7, 18, 0), date(2024, time.June, 9, 22, 0), false},
		{"Saturday start never qualifies", date(2024, time.June, 8, 10, 0), date(2024, time.June, 9, 20, 0), false},
		{"Monday return never qualifies", date(2024, time.June, 7, 18, 0), date(2024, time.June, 10, 9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWeekendPackage(tt.start, tt.end))
		})
	}
}

func TestSuggestedPrice(t *testing.T) {
	t.Run("Daily rate times days outside weekend", func(t *testing.T) {
		v := &domain.Vehicle{DailyRate: 50}
		// Monday to Wednesday, 2 days.
		price := SuggestedPrice(v, date(2024, time.June, 3, 9, 0), date(2024, time.June, 5, 9, 0))
		assert.Equal(t, 100.0, price)
	})

	t.Run("Three day span at 50 per day", func(t *testing.T) {
		v := &domain.Vehicle{DailyRate: 50}
		price := SuggestedPrice(v, date(2024, time.June, 3, 9, 0), date(2024, time.June, 6, 9, 0))
		assert.Equal(t, 150.0, price)
	})

	t.Run("Weekend package uses flat rate, not per day", func(t *testing.T) {
		v := &domain.Vehicle{DailyRate: 50, WeekendRate: 90}
		price := SuggestedPrice(v, date(2024, time.June, 7, 18, 0), date(2024, time.June, 9, 20, 0))
		assert.Equal(t, 90.0, price)
	})

	t.Run("Weekend span without weekend rate falls back to daily", func(t *testing.T) {
		v := &domain.Vehicle{DailyRate: 50}
		price := SuggestedPrice(v, date(2024, time.June, 7, 18, 0), date(2024, time.June, 9, 20, 0))
		assert.Equal(t, 100.0, price) // 2 calendar days
	})

	t.Run("No rate configured suggests zero", func(t *testing.T) {
		v := &domain.Vehicle{}
		price := SuggestedPrice(v, date(2024, time.June, 3, 9, 0), date(2024, time.June, 5, 9, 0))
		assert.Equal(t, 0.0, price)
	})
}

func TestIncludedMileage(t *testing.T) {
	t.Run("Per day allowance times days", func(t *testing.T) {
		v := &domain.Vehicle{IncludedKmPerDay: domain.LimitedMileage(200)}
		km := IncludedMileage(v, 3)
		assert.False(t, km.Unlimited)
		assert.Equal(t, 600.0, km.Km)
	})

	t.Run("Unlimited stays unlimited", func(t *testing.T) {
		v := &domain.Vehicle{IncludedKmPerDay: domain.UnlimitedMileage()}
		km := IncludedMileage(v, 10)
		assert.True(t, km.Unlimited)
	})
}

func TestQuoteReservation(t *testing.T) {
	v := &domain.Vehicle{
		DailyRate:        50,
		WeekendRate:      90,
		IncludedKmPerDay: domain.LimitedMileage(150),
	}

	t.Run("Weekend quote", func(t *testing.T) {
		q := QuoteReservation(v, date(2024, time.June, 7, 18, 0), date(2024, time.June, 9, 20, 0))
		assert.True(t, q.WeekendPackage)
		assert.Equal(t, 2, q.Days)
		assert.Equal(t, 90.0, q.SuggestedPrice)
		assert.Equal(t, 300.0, q.IncludedKm.Km)
	})

	t.Run("Regular quote", func(t *testing.T) {
		q := QuoteReservation(v, date(2024, time.June, 3, 9, 0), date(2024, time.June, 6, 9, 0))
		assert.False(t, q.WeekendPackage)
		assert.Equal(t, 3, q.Days)
		assert.Equal(t, 150.0, q.SuggestedPrice)
		assert.Equal(t, 450.0, q.IncludedKm.Km)
	})
}
