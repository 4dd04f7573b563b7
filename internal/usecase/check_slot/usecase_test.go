package check_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueStorage "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

var testDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeVenueRepo struct {
	err error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Venue{ID: 1, State: domain.VenueAvailable}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	return NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeVenueRepo{}, nopLogger{})
}

func TestExecute_IncompleteFormIsNotAnError(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonIncomplete, resp.Reason)

	resp, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonIncomplete, resp.Reason)
}

func TestExecute_FreeSlot(t *testing.T) {
	uc := newTestUseCase(nil)
	tod := domain.TimeMorning

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
}

func TestExecute_MissingTimeOfDay(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: nil,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonMissingTimeOfDay, resp.Reason)
}

func TestExecute_FullDayConflict(t *testing.T) {
	existing := &domain.Booking{
		ID: 7, VenueID: 1, Date: testDate, IsFullDay: true, Status: domain.StatusConfirmed,
	}
	uc := newTestUseCase([]*domain.Booking{existing})
	tod := domain.TimeEvening

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonFullDayConflict, resp.Reason)
}

func TestExecute_SlotTakenNamesConflictingSlot(t *testing.T) {
	tod := domain.TimeMorning
	existing := &domain.Booking{
		ID: 7, VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
		Status: domain.StatusPending,
	}
	uc := newTestUseCase([]*domain.Booking{existing})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, ReasonSlotTaken, resp.Reason)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, string(domain.TimeMorning), *resp.Slot)
}

func TestExecute_ExcludeOwnBookingWhenEditing(t *testing.T) {
	tod := domain.TimeMorning
	own := &domain.Booking{
		ID: 10, VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
		Status: domain.StatusConfirmed,
	}
	uc := newTestUseCase([]*domain.Booking{own})
	ownID := int64(10)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
		ExcludeBookingID: &ownID,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{err: venueStorage.ErrVenueNotFound}, nopLogger{})
	tod := domain.TimeMorning

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 99, Date: testDate, IsFullDay: false, TimeOfDay: &tod,
	})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}
