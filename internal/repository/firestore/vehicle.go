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

// unlimitedMileageSentinel is how legacy documents encode an unlimited daily
// allowance. It exists only in this file; domain code sees the tagged
// Mileage value.
const unlimitedMileageSentinel = -1

// vehicleDoc is the stored shape of a vehicle. It differs from the domain
// struct only in the mileage field, which keeps the numeric sentinel the
// mobile clients wrote historically.
type vehicleDoc struct {
	Make                string               `firestore:"make"`
	Model               string               `firestore:"model"`
	Plate               string               `firestore:"plate"`
	Year                int                  `firestore:"year"`
	Status              domain.VehicleStatus `firestore:"status"`
	DailyRate           float64              `firestore:"daily_rate"`
	WeekendRate         float64              `firestore:"weekend_rate"`
	IncludedKmPerDay    float64              `firestore:"included_km_per_day"`
	PerKmOverageFee     float64              `firestore:"per_km_overage_fee"`
	Financing           domain.FinancingMode `firestore:"financing"`
	OwnerName           string               `firestore:"owner_name"`
	OwnerEmail          string               `firestore:"owner_email"`
	OwnerDailyRate      float64              `firestore:"owner_daily_rate"`
	OwnerWeekendRate    float64              `firestore:"owner_weekend_rate"`
	MonthlyInsurance    float64              `firestore:"monthly_insurance"`
	LeaseMonthlyPayment float64              `firestore:"lease_monthly_payment"`
	LongTermMonthlyRent float64              `firestore:"long_term_monthly_rent"`
	CreatedOn           time.Time            `firestore:"created_on"`
	UpdatedOn           time.Time            `firestore:"updated_on"`
	DeletedOn           *time.Time           `firestore:"deleted_on"`
}

func toVehicleDoc(v *domain.Vehicle) vehicleDoc {
	km := v.IncludedKmPerDay.Km
	if v.IncludedKmPerDay.Unlimited {
		km = unlimitedMileageSentinel
	}
	return vehicleDoc{
		Make:                v.Make,
		Model:               v.Model,
		Plate:               v.Plate,
		Year:                v.Year,
		Status:              v.Status,
		DailyRate:           v.DailyRate,
		WeekendRate:         v.WeekendRate,
		IncludedKmPerDay:    km,
		PerKmOverageFee:     v.PerKmOverageFee,
		Financing:           v.Financing,
		OwnerName:           v.OwnerName,
		OwnerEmail:          v.OwnerEmail,
		OwnerDailyRate:      v.OwnerDailyRate,
		OwnerWeekendRate:    v.OwnerWeekendRate,
		MonthlyInsurance:    v.MonthlyInsurance,
		LeaseMonthlyPayment: v.LeaseMonthlyPayment,
		LongTermMonthlyRent: v.LongTermMonthlyRent,
		CreatedOn:           v.CreatedOn,
		UpdatedOn:           v.UpdatedOn,
		DeletedOn:           v.DeletedOn,
	}
}

func (d *vehicleDoc) toDomain(id string) domain.Vehicle {
	mileage := domain.LimitedMileage(d.IncludedKmPerDay)
	if d.IncludedKmPerDay < 0 {
		mileage = domain.UnlimitedMileage()
	}
	return domain.Vehicle{
		ID:                  id,
		Make:                d.Make,
		Model:               d.Model,
		Plate:               d.Plate,
		Year:                d.Year,
		Status:              d.Status,
		DailyRate:           d.DailyRate,
		WeekendRate:         d.WeekendRate,
		IncludedKmPerDay:    mileage,
		PerKmOverageFee:     d.PerKmOverageFee,
		Financing:           d.Financing,
		OwnerName:           d.OwnerName,
		OwnerEmail:          d.OwnerEmail,
		OwnerDailyRate:      d.OwnerDailyRate,
		OwnerWeekendRate:    d.OwnerWeekendRate,
		MonthlyInsurance:    d.MonthlyInsurance,
		LeaseMonthlyPayment: d.LeaseMonthlyPayment,
		LongTermMonthlyRent: d.LongTermMonthlyRent,
		CreatedOn:           d.CreatedOn,
		UpdatedOn:           d.UpdatedOn,
		DeletedOn:           d.DeletedOn,
	}
}

type vehicleRepository struct {
	client *firestore.Client
}

func NewVehicleRepository(client *firestore.Client) repository.VehicleRepository {
	return &vehicleRepository{client: client}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	v.CreatedOn = now
	v.UpdatedOn = now

	logger.DatabaseCall("create", colVehicles, "id", v.ID)
	_, err := r.client.Collection(colVehicles).Doc(v.ID).Set(ctx, toVehicleDoc(v))
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	snap, err := r.client.Collection(colVehicles).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(snap, err)
	}
	var doc vehicleDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	v := doc.toDomain(snap.Ref.ID)
	return &v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	v.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("update", colVehicles, "id", v.ID)
	_, err := r.client.Collection(colVehicles).Doc(v.ID).Set(ctx, toVehicleDoc(v))
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	v.DeletedOn = &now
	return r.Update(ctx, v)
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	iter := r.client.Collection(colVehicles).Documents(ctx)
	defer iter.Stop()

	var vehicles []domain.Vehicle
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc vehicleDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		if doc.DeletedOn != nil {
			continue
		}
		vehicles = append(vehicles, doc.toDomain(snap.Ref.ID))
	}
	return vehicles, nil
}
