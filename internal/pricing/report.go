package pricing

import (
	"fmt"
	"sort"
	"time"

	"autoloc-backend/internal/domain"
)

// VehicleProfit is the per-vehicle breakdown line of a monthly report.
type VehicleProfit struct {
	VehicleID        string  `json:"vehicle_id"`
	VehicleName      string  `json:"vehicle_name"`
	Reservations     int     `json:"reservations"`
	Revenue          float64 `json:"revenue"`
	OperatingCharges float64 `json:"operating_charges"`
	OwnerPayout      float64 `json:"owner_payout"`
	NetProfit        float64 `json:"net_profit"`
}

// MonthlyReport is the profitability summary for one calendar month.
// Reservations are attributed wholly to the month of their start date;
// negative profit is reported as-is.
type MonthlyReport struct {
	Year             int             `json:"year"`
	Month            time.Month      `json:"month"`
	Revenue          float64         `json:"revenue"`
	OperatingCharges float64         `json:"operating_charges"`
	OwnerPayouts     float64         `json:"owner_payouts"`
	NetProfit        float64         `json:"net_profit"`
	Vehicles         []VehicleProfit `json:"vehicles"`
}

// InMonth reports whether a reservation's start date falls in the given
// calendar month.
func InMonth(r *domain.Reservation, year int, month time.Month) bool {
	start, err := time.Parse(domain.DateLayout, r.StartDate)
	if err != nil {
		return false
	}
	return start.Year() == year && start.Month() == month
}

// BuildMonthlyReport aggregates revenue, normalized operating charges and
// owner payouts into net profit: net = revenue − operating charges − owner
// payouts. Revenue sums the agreed rental amount over non-cancelled
// reservations starting in the month. The per-vehicle breakdown applies the
// same formula scoped to that vehicle's reservations and charges (company-wide
// charges count only toward the company total) and is sorted by net profit
// for ranking.
func BuildMonthlyReport(year int, month time.Month, vehicles []domain.Vehicle, reservations []domain.Reservation, charges []domain.Charge) (*MonthlyReport, error) {
	report := &MonthlyReport{Year: year, Month: month}

	byVehicle := make(map[string][]domain.Reservation)
	for i := range reservations {
		r := reservations[i]
		if !InMonth(&r, year, month) || r.Status == domain.ReservationStatusCancelled {
			continue
		}
		report.Revenue += r.RentalAmount
		byVehicle[r.VehicleID] = append(byVehicle[r.VehicleID], r)
	}

	report.OperatingCharges = OperatingCharges(charges, vehicles)

	for i := range vehicles {
		v := &vehicles[i]
		line := VehicleProfit{
			VehicleID:        v.ID,
			VehicleName:      v.DisplayName(),
			Reservations:     len(byVehicle[v.ID]),
			OperatingCharges: VehicleFixedMonthlyCost(v),
		}
		for _, r := range byVehicle[v.ID] {
			line.Revenue += r.RentalAmount
		}
		for j := range charges {
			c := &charges[j]
			if c.OwnerPayout || c.VehicleID != v.ID || c.VehicleID == "" {
				continue
			}
			line.OperatingCharges += MonthlyEquivalent(c)
		}
		payout, err := OwnerPayout(v, byVehicle[v.ID])
		if err != nil {
			return nil, fmt.Errorf("owner payout for vehicle %s: %w", v.ID, err)
		}
		line.OwnerPayout = payout
		line.NetProfit = line.Revenue - line.OperatingCharges - line.OwnerPayout

		report.OwnerPayouts += payout
		report.Vehicles = append(report.Vehicles, line)
	}

	report.NetProfit = report.Revenue - report.OperatingCharges - report.OwnerPayouts

	sort.Slice(report.Vehicles, func(i, j int) bool {
		return report.Vehicles[i].NetProfit > report.Vehicles[j].NetProfit
	})

	return report, nil
}
