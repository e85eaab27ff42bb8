package pricing

import (
	"fmt"

	"autoloc-backend/internal/domain"
)

// ReservationPayout computes the owner's cut for one reservation of a
// revenue-share vehicle. An explicit override recorded on the reservation
// wins; otherwise the fallback is the vehicle's daily owner rate × rental
// days. Cancelled reservations pay out nothing.
//
// The fallback always applies the daily owner rate, even when the reservation
// is a weekend package and the vehicle carries a distinct OwnerWeekendRate.
// That mirrors how payouts have historically been computed; the weekend owner
// rate is surfaced on statements but never applied implicitly.
func ReservationPayout(v *domain.Vehicle, r *domain.Reservation) (float64, error) {
	if r.Status == domain.ReservationStatusCancelled {
		return 0, nil
	}
	if r.OwnerPayoutOverride != nil {
		return *r.OwnerPayoutOverride, nil
	}
	start, err := r.StartsAt()
	if err != nil {
		return 0, fmt.Errorf("reservation %s: %w", r.ID, err)
	}
	end, err := r.EndsAt()
	if err != nil {
		return 0, fmt.Errorf("reservation %s: %w", r.ID, err)
	}
	return v.OwnerDailyRate * float64(RentalDays(start, end)), nil
}

// OwnerPayout sums the owner's cut across a vehicle's reservations, skipping
// cancelled ones. Vehicles not financed under revenue share owe nothing.
func OwnerPayout(v *domain.Vehicle, reservations []domain.Reservation) (float64, error) {
	if v.Financing != domain.FinancingRevenueShare {
		return 0, nil
	}
	var total float64
	for i := range reservations {
		amount, err := ReservationPayout(v, &reservations[i])
		if err != nil {
			return 0, err
		}
		total += amount
	}
	return total, nil
}
