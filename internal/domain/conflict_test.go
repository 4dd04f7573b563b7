package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/pkg/ptr"
)

func slotRequest(venueID int64, date time.Time, isFullDay bool, tod *TimeOfDay) SlotRequest {
	return SlotRequest{VenueID: venueID, Date: date, IsFullDay: isFullDay, TimeOfDay: tod}
}

func TestValidateSlotRequest_IncompleteRequest(t *testing.T) {
	tod := TimeMorning

	// no venue yet
	err := ValidateSlotRequest(slotRequest(0, testDate, true, nil), nil)
	assert.ErrorIs(t, err, ErrIncompleteRequest)

	// no date yet
	err = ValidateSlotRequest(slotRequest(1, time.Time{}, false, &tod), nil)
	assert.ErrorIs(t, err, ErrIncompleteRequest)
}

func TestValidateSlotRequest_MissingTimeOfDay(t *testing.T) {
	// half-day request with no slot chosen
	err := ValidateSlotRequest(slotRequest(1, testDate, false, nil), nil)
	assert.ErrorIs(t, err, ErrMissingTimeOfDay)

	// invalid value is rejected the same way, never defaulted to morning
	bad := TimeOfDay("noon")
	err = ValidateSlotRequest(slotRequest(1, testDate, false, &bad), nil)
	assert.ErrorIs(t, err, ErrMissingTimeOfDay)
}

func TestValidateSlotRequest_HalfDayAgainstFullDay(t *testing.T) {
	// a confirmed full-day booking exists; a half-day request
	// must be told the whole day is booked, not just its slot
	bookings := []*Booking{fullDayBooking(1, 1, testDate, StatusConfirmed)}
	tod := TimeMorning

	err := ValidateSlotRequest(slotRequest(1, testDate, false, &tod), bookings)

	assert.ErrorIs(t, err, ErrFullDayConflict)
	assert.NotErrorIs(t, err, ErrTimeSlotTaken)
}

func TestValidateSlotRequest_OppositeHalfDayIsFree(t *testing.T) {
	// morning is taken, evening is requested
	bookings := []*Booking{halfDayBooking(1, 1, testDate, TimeMorning, StatusConfirmed)}
	tod := TimeEvening

	err := ValidateSlotRequest(slotRequest(1, testDate, false, &tod), bookings)

	assert.NoError(t, err)
}

func TestValidateSlotRequest_FullDayAgainstHalfDay(t *testing.T) {
	// one half-day slot taken blocks a full-day request
	bookings := []*Booking{halfDayBooking(1, 1, testDate, TimeMorning, StatusConfirmed)}

	err := ValidateSlotRequest(slotRequest(1, testDate, true, nil), bookings)

	assert.ErrorIs(t, err, ErrFullDayConflict)
}

func TestValidateSlotRequest_CancelledBookingFreesSlot(t *testing.T) {
	// a cancelled full-day booking is invisible
	bookings := []*Booking{fullDayBooking(1, 1, testDate, StatusCancelled)}

	err := ValidateSlotRequest(slotRequest(1, testDate, true, nil), bookings)

	assert.NoError(t, err)
}

func TestValidateSlotRequest_SameSlotTaken(t *testing.T) {
	bookings := []*Booking{halfDayBooking(1, 1, testDate, TimeEvening, StatusPending)}
	tod := TimeEvening

	err := ValidateSlotRequest(slotRequest(1, testDate, false, &tod), bookings)

	require.ErrorIs(t, err, ErrTimeSlotTaken)
	slot, ok := ConflictingSlot(err)
	require.True(t, ok)
	assert.Equal(t, TimeEvening, slot)
}

func TestValidateSlotRequest_SelfExclusionOnEdit(t *testing.T) {
	// editing booking 7 must not conflict with its own prior row
	existing := halfDayBooking(7, 1, testDate, TimeMorning, StatusConfirmed)
	req := slotRequest(1, testDate, false, ptr.Ptr(TimeMorning))
	req.ExcludeBookingID = ptr.Ptr(int64(7))

	err := ValidateSlotRequest(req, []*Booking{existing})

	assert.NoError(t, err)
}

func TestValidateSlotRequest_SelfExclusionDoesNotHideOthers(t *testing.T) {
	bookings := []*Booking{
		halfDayBooking(7, 1, testDate, TimeMorning, StatusConfirmed),
		halfDayBooking(8, 1, testDate, TimeEvening, StatusConfirmed),
	}
	req := slotRequest(1, testDate, false, ptr.Ptr(TimeEvening))
	req.ExcludeBookingID = ptr.Ptr(int64(7))

	err := ValidateSlotRequest(req, bookings)

	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

// Slot capacity stays at 1 per time of day across any sequence of accepted
// insertions: once the validator accepts a request, replaying the same
// request against the grown set must fail.
func TestValidateSlotRequest_AcceptedInsertionsKeepCapacityOne(t *testing.T) {
	var bookings []*Booking
	nextID := int64(1)

	insert := func(isFullDay bool, tod *TimeOfDay) error {
		err := ValidateSlotRequest(slotRequest(1, testDate, isFullDay, tod), bookings)
		if err != nil {
			return err
		}
		b := &Booking{ID: nextID, VenueID: 1, Date: testDate, IsFullDay: isFullDay, TimeOfDay: tod, Status: StatusPending}
		nextID++
		bookings = append(bookings, b)
		return nil
	}

	require.NoError(t, insert(false, ptr.Ptr(TimeMorning)))
	require.NoError(t, insert(false, ptr.Ptr(TimeEvening)))

	// every further insert on the date must be rejected
	assert.Error(t, insert(false, ptr.Ptr(TimeMorning)))
	assert.Error(t, insert(false, ptr.Ptr(TimeEvening)))
	assert.Error(t, insert(true, nil))

	avail := ComputeDayAvailability(1, testDate, bookings)
	assert.LessOrEqual(t, len(avail.MorningBookings), 1)
	assert.LessOrEqual(t, len(avail.EveningBookings), 1)
	// full-day and half-day bookings never coexist post-validation
	assert.Empty(t, avail.FullDayBookings)
}

func TestValidateSlotRequest_FullDayExcludesHalfDays(t *testing.T) {
	var bookings []*Booking

	err := ValidateSlotRequest(slotRequest(1, testDate, true, nil), bookings)
	require.NoError(t, err)
	bookings = append(bookings, fullDayBooking(1, 1, testDate, StatusConfirmed))

	// no half-day booking can join a full-day date
	for _, tod := range []TimeOfDay{TimeMorning, TimeEvening} {
		err := ValidateSlotRequest(slotRequest(1, testDate, false, ptr.Ptr(tod)), bookings)
		assert.ErrorIs(t, err, ErrFullDayConflict)
	}
}
