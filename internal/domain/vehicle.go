package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

// FinancingMode describes how a vehicle was financed. Exactly one mode
// applies per vehicle; owner payout logic only activates for REVENUE_SHARE
// ("mise à disposition") vehicles.
type FinancingMode string

const (
	FinancingCash           FinancingMode = "CASH"
	FinancingLeasing        FinancingMode = "LEASING"
	FinancingLongTermRental FinancingMode = "LLD"
	FinancingRevenueShare   FinancingMode = "REVENUE_SHARE"
)

func (m FinancingMode) Valid() bool {
	switch m {
	case FinancingCash, FinancingLeasing, FinancingLongTermRental, FinancingRevenueShare:
		return true
	}
	return false
}

type Vehicle struct {
	ID           string        `json:"id" firestore:"-"`
	Make         string        `json:"make" firestore:"make"`
	Model        string        `json:"model" firestore:"model"`
	Plate        string        `json:"plate" firestore:"plate"`
	Year         int           `json:"year" firestore:"year"`
	Status       VehicleStatus `json:"status" firestore:"status"`

	// Rates in currency units. A zero rate means "not configured".
	DailyRate   float64 `json:"daily_rate" firestore:"daily_rate"`
	WeekendRate float64 `json:"weekend_rate" firestore:"weekend_rate"`

	// Included mileage allowance per rental day.
	IncludedKmPerDay Mileage `json:"included_km_per_day" firestore:"-"`
	PerKmOverageFee  float64 `json:"per_km_overage_fee" firestore:"per_km_overage_fee"`

	Financing FinancingMode `json:"financing" firestore:"financing"`

	// Owner fields, meaningful only for REVENUE_SHARE vehicles.
	OwnerName        string  `json:"owner_name,omitempty" firestore:"owner_name"`
	OwnerEmail       string  `json:"owner_email,omitempty" firestore:"owner_email"`
	OwnerDailyRate   float64 `json:"owner_daily_rate,omitempty" firestore:"owner_daily_rate"`
	OwnerWeekendRate float64 `json:"owner_weekend_rate,omitempty" firestore:"owner_weekend_rate"`

	// Fixed monthly cost contributors.
	MonthlyInsurance    float64 `json:"monthly_insurance" firestore:"monthly_insurance"`
	LeaseMonthlyPayment float64 `json:"lease_monthly_payment" firestore:"lease_monthly_payment"`
	LongTermMonthlyRent float64 `json:"long_term_monthly_rent" firestore:"long_term_monthly_rent"`

	CreatedOn time.Time  `json:"created_on" firestore:"created_on"`
	UpdatedOn time.Time  `json:"updated_on" firestore:"updated_on"`
	DeletedOn *time.Time `json:"deleted_on,omitempty" firestore:"deleted_on"`
}

// DisplayName returns a human readable label for emails and reports.
func (v *Vehicle) DisplayName() string {
	name := v.Make + " " + v.Model
	if v.Plate != "" {
		name += " (" + v.Plate + ")"
	}
	return name
}
