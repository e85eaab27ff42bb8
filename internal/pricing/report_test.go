package pricing

import (
	"testing"
	"time"

	"autoloc-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func monthReservation(vehicleID, startDate string, amount float64, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{
		VehicleID:    vehicleID,
		StartDate:    startDate,
		StartTime:    "09:00",
		EndDate:      startDate,
		EndTime:      "18:00",
		RentalAmount: amount,
		Status:       status,
	}
}

func TestInMonth(t *testing.T) {
	r := monthReservation("v1", "2024-05-31", 100, domain.ReservationStatusCompleted)
	assert.True(t, InMonth(&r, 2024, time.May))
	assert.False(t, InMonth(&r, 2024, time.June))
	assert.False(t, InMonth(&r, 2023, time.May))

	bad := monthReservation("v1", "garbage", 100, domain.ReservationStatusCompleted)
	assert.False(t, InMonth(&bad, 2024, time.May))
}

func TestBuildMonthlyReport(t *testing.T) {
	t.Run("Net profit formula", func(t *testing.T) {
		vehicles := []domain.Vehicle{
			{ID: "v1", Make: "Renault", Model: "Clio", Financing: domain.FinancingCash},
		}
		reservations := []domain.Reservation{
			monthReservation("v1", "2024-05-03", 600, domain.ReservationStatusCompleted),
			monthReservation("v1", "2024-05-18", 400, domain.ReservationStatusCompleted),
		}
		charges := []domain.Charge{
			{Amount: 300, Frequency: domain.FrequencyMonthly},
		}

		report, err := BuildMonthlyReport(2024, time.May, vehicles, reservations, charges)
		assert.NoError(t, err)
		assert.Equal(t, 1000.0, report.Revenue)
		assert.Equal(t, 300.0, report.OperatingCharges)
		assert.Equal(t, 0.0, report.OwnerPayouts)
		assert.Equal(t, 700.0, report.NetProfit)
	})

	t.Run("Owner payouts reduce profit", func(t *testing.T) {
		vehicles := []domain.Vehicle{
			{ID: "v1", Financing: domain.FinancingRevenueShare, OwnerDailyRate: 150},
		}
		reservations := []domain.Reservation{
			monthReservation("v1", "2024-05-03", 1000, domain.ReservationStatusCompleted),
		}
		charges := []domain.Charge{
			{Amount: 300, Frequency: domain.FrequencyMonthly},
		}

		report, err := BuildMonthlyReport(2024, time.May, vehicles, reservations, charges)
		assert.NoError(t, err)
		assert.Equal(t, 1000.0, report.Revenue)
		assert.Equal(t, 150.0, report.OwnerPayouts) // same-day = 1 day * 150
		assert.Equal(t, 550.0, report.NetProfit)
	})

	t.Run("Negative profit is not clamped", func(t *testing.T) {
		vehicles := []domain.Vehicle{{ID: "v1", Financing: domain.FinancingCash}}
		reservations := []domain.Reservation{
			monthReservation("v1", "2024-05-03", 100, domain.ReservationStatusCompleted),
		}
		charges := []domain.Charge{
			{Amount: 900, Frequency: domain.FrequencyMonthly},
		}

		report, err := BuildMonthlyReport(2024, time.May, vehicles, reservations, charges)
		assert.NoError(t, err)
		assert.Equal(t, -800.0, report.NetProfit)
	})

	t.Run("Cancelled and out-of-month reservations excluded", func(t *testing.T) {
		vehicles := []domain.Vehicle{{ID: "v1", Financing: domain.FinancingCash}}
		reservations := []domain.Reservation{
			monthReservation("v1", "2024-05-03", 500, domain.ReservationStatusCompleted),
			monthReservation("v1", "2024-05-10", 500, domain.ReservationStatusCancelled),
			monthReservation("v1", "2024-06-01", 500, domain.ReservationStatusCompleted),
		}

		report, err := BuildMonthlyReport(2024, time.May, vehicles, reservations, nil)
		assert.NoError(t, err)
		assert.Equal(t, 500.0, report.Revenue)
	})

	t.Run("Per-vehicle breakdown and ranking", func(t *testing.T) {
		vehicles := []domain.Vehicle{
			{ID: "v1", Make: "Renault", Model: "Clio", Financing: domain.FinancingCash, MonthlyInsurance: 50},
			{ID: "v2", Make: "Peugeot", Model: "208", Financing: domain.FinancingCash, MonthlyInsurance: 50},
		}
		reservations := []domain.Reservation{
			monthReservation("v1", "2024-05-03", 200, domain.ReservationStatusCompleted),
			monthReservation("v2", "2024-05-04", 800, domain.ReservationStatusCompleted),
		}
		charges := []domain.Charge{
			{Amount: 120, Frequency: domain.FrequencyYearly, VehicleID: "v1"}, // 10/month to v1
			{Amount: 30, Frequency: domain.FrequencyMonthly},                  // company-wide
		}

		report, err := BuildMonthlyReport(2024, time.May, vehicles, reservations, charges)
		assert.NoError(t, err)
		assert.Len(t, report.Vehicles, 2)

		// Ranked by net profit descending: v2 first.
		assert.Equal(t, "v2", report.Vehicles[0].VehicleID)
		assert.Equal(t, 750.0, report.Vehicles[0].NetProfit) // 800 - 50
		assert.Equal(t, "v1", report.Vehicles[1].VehicleID)
		assert.InDelta(t, 140.0, report.Vehicles[1].NetProfit, 1e-9) // 200 - 50 - 10

		// Company-wide charge appears only in the company total.
		assert.InDelta(t, 140.0, report.OperatingCharges, 1e-9) // 50+50 insurance + 10 + 30
	})
}
