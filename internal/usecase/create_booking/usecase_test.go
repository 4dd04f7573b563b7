package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingStorage "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	venueStorage "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
	"github.com/avetra/venue-booking-service/pkg/ptr"
)

var (
	testNow  = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b := *booking
	b.ID = 101
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = &b
	return &b, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venue, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func availableVenue() *domain.Venue {
	return &domain.Venue{
		ID:            1,
		Name:          "Grand Hall",
		FullDayAmount: 50000,
		HalfDayAmount: 30000,
		DepositAmount: 10000,
		State:         domain.VenueAvailable,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, venues *fakeVenueRepo) *UseCase {
	uc := NewUseCase(bookings, venues, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func halfDayRequest(tod domain.TimeOfDay) *Request {
	return &Request{
		VenueID:   1,
		EventName: "Team offsite",
		EventType: domain.EventCorporate,
		Date:      testDate,
		IsFullDay: false,
		TimeOfDay: &tod,
	}
}

func TestExecute_HalfDayStampsPricingAndWindow(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeVenueRepo{venue: availableVenue()})

	resp, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, domain.MorningWindow.Start, resp.StartTime)
	assert.Equal(t, domain.MorningWindow.End, resp.EndTime)
	assert.Equal(t, 30000.0, resp.TotalAmount)
	assert.Equal(t, 10000.0, resp.DepositAmount)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.DepositPaid)
}

func TestExecute_FullDayUsesFullDayAmount(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeVenueRepo{venue: availableVenue()})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:    1,
		EventName:  "Wedding of the year",
		EventType:  domain.EventWedding,
		Date:       testDate,
		IsFullDay:  true,
		ClientName: ptr.Ptr("Ivanov"),
	})

	require.NoError(t, err)
	assert.Equal(t, 50000.0, resp.TotalAmount)
	assert.Equal(t, domain.FullDayWindow.Start, resp.StartTime)
	assert.Equal(t, domain.FullDayWindow.End, resp.EndTime)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: availableVenue()})

	req := halfDayRequest(domain.TimeMorning)
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayIsBookable(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: availableVenue()})

	req := halfDayRequest(domain.TimeMorning)
	req.Date = testNow // same day, later wall-clock time

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{err: venueStorage.ErrVenueNotFound})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_VenueUnderMaintenance(t *testing.T) {
	venue := availableVenue()
	venue.State = domain.VenueMaintenance
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: venue})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeEvening))

	assert.ErrorIs(t, err, ErrVenueUnavailable)
}

func TestExecute_MissingTimeOfDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: availableVenue()})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		EventName: "Conference",
		EventType: domain.EventConference,
		Date:      testDate,
		IsFullDay: false,
		TimeOfDay: nil,
	})

	assert.ErrorIs(t, err, ErrMissingTimeOfDay)
}

func TestExecute_NoPricingConfigured(t *testing.T) {
	venue := availableVenue()
	venue.FullDayAmount = 0
	venue.HalfDayAmount = 0
	venue.TotalAmount = 0
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: venue})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	assert.ErrorIs(t, err, ErrNoPricing)
}

func TestExecute_FullDayConflict(t *testing.T) {
	existing := &domain.Booking{
		ID:        7,
		VenueID:   1,
		Date:      testDate,
		IsFullDay: true,
		Status:    domain.StatusConfirmed,
	}
	uc := newTestUseCase(&fakeBookingRepo{bookings: []*domain.Booking{existing}}, &fakeVenueRepo{venue: availableVenue()})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	assert.ErrorIs(t, err, ErrFullDayConflict)
}

func TestExecute_TimeSlotTaken(t *testing.T) {
	tod := domain.TimeMorning
	existing := &domain.Booking{
		ID:        7,
		VenueID:   1,
		Date:      testDate,
		IsFullDay: false,
		TimeOfDay: &tod,
		Status:    domain.StatusPending,
	}
	uc := newTestUseCase(&fakeBookingRepo{bookings: []*domain.Booking{existing}}, &fakeVenueRepo{venue: availableVenue()})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_ConcurrentInsertMapsToStaleRead(t *testing.T) {
	// the availability check passed, but another transaction committed the
	// same slot first and the partial unique index fired on insert
	repo := &fakeBookingRepo{createErr: bookingStorage.ErrSlotConflict}
	uc := newTestUseCase(repo, &fakeVenueRepo{venue: availableVenue()})

	_, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeEvening))

	assert.ErrorIs(t, err, ErrStaleRead)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	tod := domain.TimeMorning
	cancelled := &domain.Booking{
		ID:        7,
		VenueID:   1,
		Date:      testDate,
		IsFullDay: false,
		TimeOfDay: &tod,
		Status:    domain.StatusCancelled,
	}
	uc := newTestUseCase(&fakeBookingRepo{bookings: []*domain.Booking{cancelled}}, &fakeVenueRepo{venue: availableVenue()})

	resp, err := uc.Execute(context.Background(), halfDayRequest(domain.TimeMorning))

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}
