// Package firestore implements the repository interfaces on Google Cloud
// Firestore, the document store the mobile clients read and write directly.
// Document IDs are UUIDs; the ID lives in the document path, not in the
// document body.
package firestore

import (
	"cloud.google.com/go/firestore"

	"autoloc-backend/internal/repository"
)

const (
	colVehicles     = "vehicles"
	colClients      = "clients"
	colReservations = "reservations"
	colCharges      = "charges"
	colInspections  = "inspections"
)

// Store bundles all Firestore-backed repositories over one client.
type Store struct {
	VehicleRepository     repository.VehicleRepository
	ClientRepository      repository.ClientRepository
	ReservationRepository repository.ReservationRepository
	ChargeRepository      repository.ChargeRepository
	InspectionRepository  repository.InspectionRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		VehicleRepository:     NewVehicleRepository(client),
		ClientRepository:      NewClientRepository(client),
		ReservationRepository: NewReservationRepository(client),
		ChargeRepository:      NewChargeRepository(client),
		InspectionRepository:  NewInspectionRepository(client),
	}
}

// notFound converts a missing-document Get result into the repository
// sentinel. Firestore returns a non-nil snapshot with Exists()==false
// alongside the NotFound error.
func notFound(snap *firestore.DocumentSnapshot, err error) error {
	if snap != nil && !snap.Exists() {
		return repository.ErrNotFound
	}
	return err
}
