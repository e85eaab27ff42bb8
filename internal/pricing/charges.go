package pricing

import "autoloc-backend/internal/domain"

// FrequencyMultiplier converts a billing cadence to its monthly fraction.
// Unknown cadences are treated as monthly.
func FrequencyMultiplier(f domain.ChargeFrequency) float64 {
	switch f {
	case domain.FrequencyQuarterly:
		return 1.0 / 3.0
	case domain.FrequencyYearly:
		return 1.0 / 12.0
	default:
		return 1
	}
}

// MonthlyEquivalent normalizes a charge to its monthly-equivalent amount.
func MonthlyEquivalent(c *domain.Charge) float64 {
	return c.Amount * FrequencyMultiplier(c.Frequency)
}

// VehicleFixedMonthlyCost sums a vehicle's recurring costs that live outside
// the charge collection: insurance plus, depending on financing, the lease
// payment (Leasing) or the long-term rent (LLD).
func VehicleFixedMonthlyCost(v *domain.Vehicle) float64 {
	cost := v.MonthlyInsurance
	switch v.Financing {
	case domain.FinancingLeasing:
		cost += v.LeaseMonthlyPayment
	case domain.FinancingLongTermRental:
		cost += v.LongTermMonthlyRent
	}
	return cost
}

// OperatingCharges sums the monthly-equivalent of every operating charge,
// excluding owner-payout charges (those are accounted for via the payout
// calculation and would otherwise be double counted), plus the fixed monthly
// costs of every vehicle.
func OperatingCharges(charges []domain.Charge, vehicles []domain.Vehicle) float64 {
	var total float64
	for i := range charges {
		if charges[i].OwnerPayout {
			continue
		}
		total += MonthlyEquivalent(&charges[i])
	}
	for i := range vehicles {
		total += VehicleFixedMonthlyCost(&vehicles[i])
	}
	return total
}
