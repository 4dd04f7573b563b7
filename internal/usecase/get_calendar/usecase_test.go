package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueStorage "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

var testFrom = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.VenueBookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
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

func TestExecute_OneDayPerRangeEntry(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		From:    testFrom,
		To:      testFrom.AddDate(0, 0, 6),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Days, 7)
	assert.Equal(t, "none", resp.Days[0].Decoration)
	assert.Zero(t, resp.Days[0].Count)
}

func TestExecute_FetchesCancelledBookingsToo(t *testing.T) {
	// a day holding only a cancelled booking still gets its decoration,
	// so the repository query must not filter cancelled rows out
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeVenueRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		From:    testFrom,
		To:      testFrom.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	assert.True(t, repo.lastFilter.IncludeCancelled)
}

func TestExecute_DecorationAndBadgeCount(t *testing.T) {
	tod := domain.TimeMorning
	confirmed := &domain.Booking{
		ID: 1, VenueID: 1, Date: testFrom, IsFullDay: false, TimeOfDay: &tod,
		Status: domain.StatusConfirmed,
	}
	cancelled := &domain.Booking{
		ID: 2, VenueID: 1, Date: testFrom, IsFullDay: true,
		Status: domain.StatusCancelled,
	}
	uc := NewUseCase(&fakeBookingRepo{bookings: []*domain.Booking{confirmed, cancelled}}, &fakeVenueRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		From:    testFrom,
		To:      testFrom,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Days[0].Decoration)
	assert.Equal(t, 1, resp.Days[0].Count) // cancelled not counted in the badge
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		From:    testFrom,
		To:      testFrom.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		VenueID: 1,
		From:    testFrom,
		To:      testFrom.AddDate(0, 0, MaxRangeDays+1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVenueRepo{err: venueStorage.ErrVenueNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 99,
		From:    testFrom,
		To:      testFrom,
	})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}
