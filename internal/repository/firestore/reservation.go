package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/repository"
)

type reservationRepository struct {
	client *firestore.Client
}

func NewReservationRepository(client *firestore.Client) repository.ReservationRepository {
	return &reservationRepository{client: client}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	res.CreatedOn = now
	res.UpdatedOn = now

	logger.DatabaseCall("create", colReservations, "id", res.ID)
	_, err := r.client.Collection(colReservations).Doc(res.ID).Set(ctx, res)
	return err
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	snap, err := r.client.Collection(colReservations).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(snap, err)
	}
	var res domain.Reservation
	if err := snap.DataTo(&res); err != nil {
		return nil, err
	}
	res.ID = snap.Ref.ID
	return &res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	res.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("update", colReservations, "id", res.ID)
	_, err := r.client.Collection(colReservations).Doc(res.ID).Set(ctx, res)
	return err
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.collect(r.client.Collection(colReservations).Documents(ctx))
}

func (r *reservationRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error) {
	q := r.client.Collection(colReservations).Where("vehicle_id", "==", vehicleID)
	return r.collect(q.Documents(ctx))
}

// ListByMonth fetches reservations whose start date falls within the given
// calendar month. Dates are stored as "2006-01-02" strings, so a
// lexicographic range query covers the month exactly.
func (r *reservationRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Reservation, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	q := r.client.Collection(colReservations).
		Where("start_date", ">=", first.Format(domain.DateLayout)).
		Where("start_date", "<=", last.Format(domain.DateLayout))
	return r.collect(q.Documents(ctx))
}

func (r *reservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	q := r.client.Collection(colReservations).Where("status", "==", string(status))
	return r.collect(q.Documents(ctx))
}

func (r *reservationRepository) collect(iter *firestore.DocumentIterator) ([]domain.Reservation, error) {
	defer iter.Stop()

	var reservations []domain.Reservation
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var res domain.Reservation
		if err := snap.DataTo(&res); err != nil {
			return nil, err
		}
		res.ID = snap.Ref.ID
		reservations = append(reservations, res)
	}
	return reservations, nil
}
