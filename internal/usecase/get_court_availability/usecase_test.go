package get_court_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/court-booking-service/internal/domain"
	courtRepo "github.com/courtbook/court-booking-service/internal/infra/storage/court"
	"github.com/courtbook/court-booking-service/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubCourtRepo struct {
	court    *domain.Court
	courtErr error
	services []*domain.CourtService
}

func (r *stubCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	if r.courtErr != nil {
		return nil, r.courtErr
	}
	return r.court, nil
}

func (r *stubCourtRepo) ListServices(ctx context.Context, courtID int64) ([]*domain.CourtService, error) {
	return r.services, nil
}

type stubSlotRepo struct {
	slots []*domain.TimeSlot
}

func (r *stubSlotRepo) ListAll(ctx context.Context) ([]*domain.TimeSlot, error) {
	return r.slots, nil
}

type stubBookingRepo struct {
	bookedSlotIDs  []int64
	gotServiceID   int64
	gotReservedDay time.Time
}

func (r *stubBookingRepo) ListBookedSlotIDs(ctx context.Context, courtServiceID int64, date time.Time) ([]int64, error) {
	r.gotServiceID = courtServiceID
	r.gotReservedDay = date
	return r.bookedSlotIDs, nil
}

func fixtures() (*stubBookingRepo, *stubCourtRepo, *stubSlotRepo) {
	bookings := &stubBookingRepo{bookedSlotIDs: []int64{2}}
	courts := &stubCourtRepo{
		court: &domain.Court{ID: 1, Name: "Center Court", HourlyRate: 200},
		services: []*domain.CourtService{
			{ID: 10, Kind: domain.ServiceKindRental},
			{ID: 30, Kind: domain.ServiceKindLighting, AdditionalPrice: 50},
		},
	}
	slots := &stubSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("09:00")},
		{ID: 2, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
		{ID: 3, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
	}}
	return bookings, courts, slots
}

func TestExecute_AvailabilityMarksBookedSlots(t *testing.T) {
	bookings, courts, slots := fixtures()
	uc := NewUseCase(bookings, courts, slots, stubLogger{})

	date := time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, "Center Court", resp.CourtName)
	assert.InDelta(t, 200.0, resp.HourlyRate, 1e-9)
	require.Len(t, resp.Slots, 3)

	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:00", resp.Slots[0].EndTime)

	// Занятость считается по базовой услуге корта
	assert.Equal(t, int64(10), bookings.gotServiceID)
	assert.Equal(t, date, bookings.gotReservedDay)
}

func TestExecute_CourtNotFound(t *testing.T) {
	bookings, courts, slots := fixtures()
	courts.courtErr = courtRepo.ErrCourtNotFound
	uc := NewUseCase(bookings, courts, slots, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 99,
		Date:    time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_NoServices(t *testing.T) {
	bookings, courts, slots := fixtures()
	courts.services = nil
	uc := NewUseCase(bookings, courts, slots, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrNoServiceAssociation)
}

func TestExecute_InvalidInput(t *testing.T) {
	bookings, courts, slots := fixtures()
	uc := NewUseCase(bookings, courts, slots, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
