package get_venue_availability

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

func TestExecute_EmptyDayAllSlotsFree(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate})

	require.NoError(t, err)
	assert.True(t, resp.FullDay.Available)
	assert.True(t, resp.Morning.Available)
	assert.True(t, resp.Evening.Available)
	assert.Empty(t, resp.Malformed)
}

func TestExecute_MorningBookingBlocksMorningAndFullDay(t *testing.T) {
	tod := domain.TimeMorning
	booking := &domain.Booking{
		ID: 7, VenueID: 1, EventName: "Seminar", EventType: domain.EventConference,
		Date: testDate, IsFullDay: false, TimeOfDay: &tod, Status: domain.StatusConfirmed,
	}
	uc := NewUseCase(&fakeBookingRepo{bookings: []*domain.Booking{booking}}, &fakeVenueRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate})

	require.NoError(t, err)
	assert.False(t, resp.Morning.Available)
	assert.False(t, resp.FullDay.Available)
	assert.True(t, resp.Evening.Available)
	require.Len(t, resp.Morning.Bookings, 1)
	assert.Equal(t, "Seminar", resp.Morning.Bookings[0].EventName)
}

func TestExecute_MalformedHalfDayRowIsSurfaced(t *testing.T) {
	// half-day row without a time of day: a data error the admin UI must
	// see instead of treating the slot as free
	booking := &domain.Booking{
		ID: 7, VenueID: 1, EventName: "Broken row", EventType: domain.EventOther,
		Date: testDate, IsFullDay: false, TimeOfDay: nil, Status: domain.StatusPending,
	}
	uc := NewUseCase(&fakeBookingRepo{bookings: []*domain.Booking{booking}}, &fakeVenueRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate})

	require.NoError(t, err)
	assert.False(t, resp.FullDay.Available)
	require.Len(t, resp.Malformed, 1)
	assert.Equal(t, int64(7), resp.Malformed[0].ID)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{err: venueStorage.ErrVenueNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 99, Date: testDate})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
