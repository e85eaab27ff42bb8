package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"autoloc-backend/internal/domain"
)

func TestAddVehicle(t *testing.T) {
	vehicleRepo := new(MockVehicleRepo)
	svc := NewVehicleService(vehicleRepo)
	ctx := context.Background()

	t.Run("defaults status to available", func(t *testing.T) {
		vehicleRepo.ExpectedCalls = nil
		vehicleRepo.On("Create", ctx, mock.Anything).Return(nil)

		v := testVehicle()
		v.Status = ""
		err := svc.AddVehicle(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
	})

	t.Run("rejects missing make", func(t *testing.T) {
		v := testVehicle()
		v.Make = ""
		err := svc.AddVehicle(ctx, v)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown financing mode", func(t *testing.T) {
		v := testVehicle()
		v.Financing = "BARTER"
		err := svc.AddVehicle(ctx, v)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		v := testVehicle()
		v.DailyRate = -10
		err := svc.AddVehicle(ctx, v)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("accepts unlimited mileage", func(t *testing.T) {
		vehicleRepo.ExpectedCalls = nil
		vehicleRepo.On("Create", ctx, mock.Anything).Return(nil)

		v := testVehicle()
		v.IncludedKmPerDay = domain.UnlimitedMileage()
		err := svc.AddVehicle(ctx, v)
		assert.NoError(t, err)
	})
}

func TestAddCharge(t *testing.T) {
	chargeRepo := new(MockChargeRepo)
	vehicleRepo := new(MockVehicleRepo)
	svc := NewChargeService(chargeRepo, vehicleRepo)
	ctx := context.Background()

	t.Run("valid vehicle-scoped charge", func(t *testing.T) {
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(testVehicle(), nil)
		chargeRepo.On("Create", ctx, mock.Anything).Return(nil)

		err := svc.AddCharge(ctx, &domain.Charge{
			Label:     "Insurance",
			Amount:    300,
			Frequency: domain.FrequencyQuarterly,
			VehicleID: "veh-1",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		err := svc.AddCharge(ctx, &domain.Charge{
			Label:     "Insurance",
			Amount:    300,
			Frequency: "WEEKLY",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects empty label", func(t *testing.T) {
		err := svc.AddCharge(ctx, &domain.Charge{
			Amount:    300,
			Frequency: domain.FrequencyMonthly,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
