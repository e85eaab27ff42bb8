package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPlanned    ReservationStatus = "PLANNED"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusInProgress ReservationStatus = "IN_PROGRESS"
	ReservationStatusCompleted  ReservationStatus = "COMPLETED"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
)

// IsTerminal reports whether the status allows no further transitions.
// Completed and Cancelled reservations are immutable.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// The forward chain is Planned → Confirmed → InProgress → Completed;
// Cancelled is reachable from any non-terminal state.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == ReservationStatusCancelled {
		return true
	}
	switch s {
	case ReservationStatusPlanned:
		return next == ReservationStatusConfirmed
	case ReservationStatusConfirmed:
		return next == ReservationStatusInProgress
	case ReservationStatusInProgress:
		return next == ReservationStatusCompleted
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID        string `json:"id" firestore:"-"`
	VehicleID string `json:"vehicle_id" firestore:"vehicle_id"`
	ClientID  string `json:"client_id" firestore:"client_id"`

	// Local calendar date and time-of-day, stored as separate fields the way
	// the documents record them ("2006-01-02" and "15:04").
	StartDate string `json:"start_date" firestore:"start_date"`
	StartTime string `json:"start_time" firestore:"start_time"`
	EndDate   string `json:"end_date" firestore:"end_date"`
	EndTime   string `json:"end_time" firestore:"end_time"`

	Status ReservationStatus `json:"status" firestore:"status"`

	// RentalAmount is the agreed price. It is seeded from the computed
	// suggestion but owned by the user; PriceEdited records that the user
	// replaced the suggestion, so later quote refreshes must not overwrite it.
	RentalAmount float64 `json:"rental_amount" firestore:"rental_amount"`
	PriceEdited  bool    `json:"price_edited" firestore:"price_edited"`

	// OwnerPayoutOverride, when set, replaces the computed owner cut for this
	// reservation. Nil means "use the vehicle's daily owner rate".
	OwnerPayoutOverride *float64 `json:"owner_payout_override,omitempty" firestore:"owner_payout_override"`

	Notes     string    `json:"notes" firestore:"notes"`
	CreatedOn time.Time `json:"created_on" firestore:"created_on"`
	UpdatedOn time.Time `json:"updated_on" firestore:"updated_on"`
}

// StartsAt combines the start date and time-of-day into a single instant.
func (r *Reservation) StartsAt() (time.Time, error) {
	return CombineDateTime(r.StartDate, r.StartTime)
}

// EndsAt combines the scheduled return date and time-of-day.
func (r *Reservation) EndsAt() (time.Time, error) {
	return CombineDateTime(r.EndDate, r.EndTime)
}

// CombineDateTime parses a "2006-01-02" date and a "15:04" time-of-day into
// one timestamp. An empty time-of-day defaults to midnight.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	if timeOfDay == "" {
		timeOfDay = "00:00"
	}
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, timeOfDay, err)
	}
	return t, nil
}
