package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/pricing"
	"autoloc-backend/internal/repository"
	"autoloc-backend/internal/service"
)

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) Quote(ctx context.Context, vehicleID, startDate, startTime, endDate, endTime string) (*pricing.Quote, error) {
	args := m.Called(ctx, vehicleID, startDate, startTime, endDate, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}
func (m *mockReservationService) CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockReservationService) UpdateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockReservationService) ChangeStatus(ctx context.Context, id string, next domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockReservationService) RecordOwnerPayout(ctx context.Context, reservationID string, amount float64, createCharge bool) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, amount, createCharge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockReservationService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *mockReservationService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *mockReservationService) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func newReservationRouter(svc service.ReservationService) *mux.Router {
	r := mux.NewRouter()
	NewReservationHandler(svc).Register(r)
	return r
}

func TestQuoteEndpoint(t *testing.T) {
	svc := new(mockReservationService)
	svc.On("Quote", mock.Anything, "veh-1", "2026-03-06", "18:00", "2026-03-08", "20:00").
		Return(&pricing.Quote{Days: 2, WeekendPackage: true, SuggestedPrice: 90}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/reservations/quote?vehicle_id=veh-1&start_date=2026-03-06&start_time=18:00&end_date=2026-03-08&end_time=20:00", nil)
	rec := httptest.NewRecorder()
	newReservationRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weekend_package":true`)
	assert.Contains(t, rec.Body.String(), `"suggested_price":90`)
}

func TestGetReservation_NotFound(t *testing.T) {
	svc := new(mockReservationService)
	svc.On("GetReservation", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/reservations/missing", nil)
	rec := httptest.NewRecorder()
	newReservationRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReservation_BadDateRange(t *testing.T) {
	svc := new(mockReservationService)
	svc.On("CreateReservation", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidDateRange)

	body := `{"vehicle_id":"veh-1","client_id":"cli-1","start_date":"2026-03-05","end_date":"2026-03-02"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newReservationRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeStatus_Conflict(t *testing.T) {
	svc := new(mockReservationService)
	svc.On("ChangeStatus", mock.Anything, "res-1", domain.ReservationStatusConfirmed).
		Return(nil, service.ErrTerminalState)

	body := `{"status":"CONFIRMED"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations/res-1/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newReservationRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChangeStatus_OK(t *testing.T) {
	svc := new(mockReservationService)
	svc.On("ChangeStatus", mock.Anything, "res-1", domain.ReservationStatusCancelled).
		Return(&domain.Reservation{ID: "res-1", Status: domain.ReservationStatusCancelled}, nil)

	body := `{"status":"CANCELLED"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations/res-1/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newReservationRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CANCELLED"`)
}
