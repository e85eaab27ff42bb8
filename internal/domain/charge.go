package domain

import "time"

// ChargeFrequency is the billing cadence a charge was recorded at. Reports
// normalize every charge to a monthly equivalent regardless of cadence.
type ChargeFrequency string

const (
	FrequencyMonthly   ChargeFrequency = "MONTHLY"
	FrequencyQuarterly ChargeFrequency = "QUARTERLY"
	FrequencyYearly    ChargeFrequency = "YEARLY"
)

func (f ChargeFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

type Charge struct {
	ID     string  `json:"id" firestore:"-"`
	Label  string  `json:"label" firestore:"label"`
	Amount float64 `json:"amount" firestore:"amount"`

	Frequency ChargeFrequency `json:"frequency" firestore:"frequency"`

	// VehicleID scopes the charge to one vehicle; empty means company-wide.
	VehicleID string `json:"vehicle_id,omitempty" firestore:"vehicle_id"`

	// OwnerPayout marks the charge as an owner payment rather than an
	// operating cost. Such charges are excluded from operating totals so the
	// payout is not double counted in profit aggregation.
	OwnerPayout bool `json:"owner_payout" firestore:"owner_payout"`

	// ReservationID links an owner-payout charge back to the reservation it
	// was recorded for, when it was system-created.
	ReservationID string `json:"reservation_id,omitempty" firestore:"reservation_id"`

	CreatedOn time.Time `json:"created_on" firestore:"created_on"`
	UpdatedOn time.Time `json:"updated_on" firestore:"updated_on"`
}
