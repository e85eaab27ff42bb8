package domain

import "time"

// InspectionKind distinguishes the condition record taken when the vehicle
// leaves (check-out) from the one taken at return (check-in).
type InspectionKind string

const (
	InspectionCheckOut InspectionKind = "CHECK_OUT"
	InspectionCheckIn  InspectionKind = "CHECK_IN"
)

type FuelLevel string

const (
	FuelEmpty         FuelLevel = "EMPTY"
	FuelQuarter       FuelLevel = "QUARTER"
	FuelHalf          FuelLevel = "HALF"
	FuelThreeQuarters FuelLevel = "THREE_QUARTERS"
	FuelFull          FuelLevel = "FULL"
)

// Inspection is an état des lieux: the vehicle condition record captured at
// rental start or end.
type Inspection struct {
	ID            string         `json:"id" firestore:"-"`
	ReservationID string         `json:"reservation_id" firestore:"reservation_id"`
	Kind          InspectionKind `json:"kind" firestore:"kind"`
	OdometerKm    float64        `json:"odometer_km" firestore:"odometer_km"`
	FuelLevel     FuelLevel      `json:"fuel_level" firestore:"fuel_level"`
	DamageNotes   string         `json:"damage_notes" firestore:"damage_notes"`

	// PhotoKeys are blob storage keys; the storage backend serves presigned
	// upload/download URLs for them.
	PhotoKeys []string `json:"photo_keys" firestore:"photo_keys"`

	CreatedOn time.Time `json:"created_on" firestore:"created_on"`
	UpdatedOn time.Time `json:"updated_on" firestore:"updated_on"`
}
