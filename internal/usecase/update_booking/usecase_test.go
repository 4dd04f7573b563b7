package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingStorage "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
)

var testDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	current   *domain.Booking
	bookings  []*domain.Booking
	updateErr error
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.current == nil {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return f.current, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b := *booking
	b.UpdatedAt = time.Now()
	f.updated = &b
	return &b, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeVenueRepo struct {
	venue *domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:            1,
		Name:          "Grand Hall",
		FullDayAmount: 50000,
		HalfDayAmount: 30000,
		DepositAmount: 10000,
		State:         domain.VenueAvailable,
	}
}

func morningBooking(id int64) *domain.Booking {
	tod := domain.TimeMorning
	return &domain.Booking{
		ID:            id,
		VenueID:       1,
		EventName:     "Team offsite",
		EventType:     domain.EventCorporate,
		Date:          testDate,
		StartTime:     domain.MorningWindow.Start,
		EndTime:       domain.MorningWindow.End,
		IsFullDay:     false,
		TimeOfDay:     &tod,
		TotalAmount:   28000, // manually adjusted amount, must survive edits
		DepositAmount: 9000,
		DepositPaid:   true,
		Status:        domain.StatusConfirmed,
		CreatedAt:     testDate.AddDate(0, -1, 0),
	}
}

func updateRequest(id int64, isFullDay bool, tod *domain.TimeOfDay) *Request {
	return &Request{
		BookingID: id,
		VenueID:   1,
		EventName: "Team offsite",
		EventType: domain.EventCorporate,
		Date:      testDate,
		IsFullDay: isFullDay,
		TimeOfDay: tod,
	}
}

func TestExecute_MoveToEveningExcludesOwnRecord(t *testing.T) {
	// the booking's own morning record is on the target date; moving to the
	// evening must not conflict with itself
	current := morningBooking(10)
	repo := &fakeBookingRepo{current: current, bookings: []*domain.Booking{current}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	tod := domain.TimeEvening
	resp, err := uc.Execute(context.Background(), updateRequest(10, false, &tod))

	require.NoError(t, err)
	assert.Equal(t, domain.EveningWindow.Start, resp.StartTime)
	assert.Equal(t, domain.EveningWindow.End, resp.EndTime)
}

func TestExecute_SameSlotTypeKeepsAmounts(t *testing.T) {
	current := morningBooking(10)
	repo := &fakeBookingRepo{current: current, bookings: []*domain.Booking{current}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	tod := domain.TimeEvening
	resp, err := uc.Execute(context.Background(), updateRequest(10, false, &tod))

	require.NoError(t, err)
	assert.Equal(t, 28000.0, resp.TotalAmount)
	assert.Equal(t, 9000.0, resp.DepositAmount)
	assert.True(t, resp.DepositPaid)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_SlotTypeChangeReresolvesPricing(t *testing.T) {
	current := morningBooking(10)
	repo := &fakeBookingRepo{current: current, bookings: []*domain.Booking{current}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), updateRequest(10, true, nil))

	require.NoError(t, err)
	assert.Equal(t, 50000.0, resp.TotalAmount)
	assert.Equal(t, 10000.0, resp.DepositAmount)
	assert.Equal(t, domain.FullDayWindow.Start, resp.StartTime)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	tod := domain.TimeMorning
	_, err := uc.Execute(context.Background(), updateRequest(99, false, &tod))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBookingNotEditable(t *testing.T) {
	current := morningBooking(10)
	current.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{current: current}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	tod := domain.TimeEvening
	_, err := uc.Execute(context.Background(), updateRequest(10, false, &tod))

	assert.ErrorIs(t, err, ErrBookingNotEditable)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	current := morningBooking(10)
	tod := domain.TimeEvening
	other := &domain.Booking{
		ID:        11,
		VenueID:   1,
		Date:      testDate,
		IsFullDay: false,
		TimeOfDay: &tod,
		Status:    domain.StatusPending,
	}
	repo := &fakeBookingRepo{current: current, bookings: []*domain.Booking{current, other}}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), updateRequest(10, false, &tod))

	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_ConcurrentUpdateMapsToStaleRead(t *testing.T) {
	current := morningBooking(10)
	repo := &fakeBookingRepo{
		current:   current,
		bookings:  []*domain.Booking{current},
		updateErr: bookingStorage.ErrSlotConflict,
	}
	uc := NewUseCase(repo, &fakeVenueRepo{venue: testVenue()}, &fakeTxManager{}, nopLogger{})

	tod := domain.TimeEvening
	_, err := uc.Execute(context.Background(), updateRequest(10, false, &tod))

	assert.ErrorIs(t, err, ErrStaleRead)
}
