package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func fullDayBooking(id, venueID int64, date time.Time, status BookingStatus) *Booking {
	return &Booking{
		ID:        id,
		VenueID:   venueID,
		Date:      date,
		IsFullDay: true,
		Status:    status,
	}
}

func halfDayBooking(id, venueID int64, date time.Time, tod TimeOfDay, status BookingStatus) *Booking {
	return &Booking{
		ID:        id,
		VenueID:   venueID,
		Date:      date,
		IsFullDay: false,
		TimeOfDay: &tod,
		Status:    status,
	}
}

func TestComputeDayAvailability_EmptyDate(t *testing.T) {
	avail := ComputeDayAvailability(1, testDate, nil)

	assert.True(t, avail.FullDayAvailable)
	assert.True(t, avail.MorningAvailable)
	assert.True(t, avail.EveningAvailable)
	assert.Zero(t, avail.OccupyingCount())
}

func TestComputeDayAvailability_FullDayLocksEverything(t *testing.T) {
	bookings := []*Booking{fullDayBooking(1, 1, testDate, StatusConfirmed)}

	avail := ComputeDayAvailability(1, testDate, bookings)

	assert.False(t, avail.FullDayAvailable)
	assert.False(t, avail.MorningAvailable)
	assert.False(t, avail.EveningAvailable)
	assert.True(t, avail.HasFullDay())
	assert.Len(t, avail.FullDayBookings, 1)
}

func TestComputeDayAvailability_HalfDayCapacityIsOne(t *testing.T) {
	bookings := []*Booking{halfDayBooking(1, 1, testDate, TimeMorning, StatusPending)}

	avail := ComputeDayAvailability(1, testDate, bookings)

	assert.False(t, avail.MorningAvailable)
	assert.True(t, avail.EveningAvailable)
	// the day is no longer whole, so the full-day slot is gone too
	assert.False(t, avail.FullDayAvailable)
}

func TestComputeDayAvailability_BothHalvesBooked(t *testing.T) {
	bookings := []*Booking{
		halfDayBooking(1, 1, testDate, TimeMorning, StatusConfirmed),
		halfDayBooking(2, 1, testDate, TimeEvening, StatusPending),
	}

	avail := ComputeDayAvailability(1, testDate, bookings)

	assert.False(t, avail.FullDayAvailable)
	assert.False(t, avail.MorningAvailable)
	assert.False(t, avail.EveningAvailable)
	assert.False(t, avail.HasFullDay())
}

func TestComputeDayAvailability_CancelledBookingsAreInvisible(t *testing.T) {
	bookings := []*Booking{
		fullDayBooking(1, 1, testDate, StatusCancelled),
		halfDayBooking(2, 1, testDate, TimeMorning, StatusCancelled),
	}

	avail := ComputeDayAvailability(1, testDate, bookings)

	assert.True(t, avail.FullDayAvailable)
	assert.True(t, avail.MorningAvailable)
	assert.True(t, avail.EveningAvailable)
	assert.Zero(t, avail.OccupyingCount())
}

func TestComputeDayAvailability_IgnoresOtherVenuesAndDates(t *testing.T) {
	otherDate := testDate.AddDate(0, 0, 1)
	bookings := []*Booking{
		fullDayBooking(1, 2, testDate, StatusConfirmed),  // other venue
		fullDayBooking(2, 1, otherDate, StatusConfirmed), // other date
	}

	avail := ComputeDayAvailability(1, testDate, bookings)

	assert.True(t, avail.FullDayAvailable)
	assert.Zero(t, avail.OccupyingCount())
}

func TestComputeDayAvailability_MalformedHalfDayIsNotFree(t *testing.T) {
	// half-day booking without time of day: a data error, the date must not
	// look fully free
	bookings := []*Booking{
		{ID: 1, VenueID: 1, Date: testDate, IsFullDay: false, Status: StatusPending},
	}

	avail := ComputeDayAvailability(1, testDate, bookings)

	require.Len(t, avail.Malformed, 1)
	assert.False(t, avail.FullDayAvailable)
	assert.True(t, avail.MorningAvailable)
	assert.True(t, avail.EveningAvailable)
}

func TestComputeDayAvailability_IsIdempotent(t *testing.T) {
	bookings := []*Booking{
		halfDayBooking(1, 1, testDate, TimeMorning, StatusConfirmed),
		fullDayBooking(2, 1, testDate, StatusCancelled),
	}

	first := ComputeDayAvailability(1, testDate, bookings)
	second := ComputeDayAvailability(1, testDate, bookings)

	assert.Equal(t, first, second)
}

func TestOccupiedSlots(t *testing.T) {
	tod := TimeEvening

	tests := []struct {
		name    string
		booking *Booking
		want    []Slot
		wantErr error
	}{
		{
			name:    "cancelled occupies nothing",
			booking: fullDayBooking(1, 1, testDate, StatusCancelled),
			want:    nil,
		},
		{
			name:    "full day",
			booking: fullDayBooking(1, 1, testDate, StatusConfirmed),
			want:    []Slot{SlotFullDay},
		},
		{
			name: "full day ignores stray time of day",
			booking: &Booking{
				ID: 1, VenueID: 1, Date: testDate,
				IsFullDay: true, TimeOfDay: &tod, Status: StatusPending,
			},
			want: []Slot{SlotFullDay},
		},
		{
			name:    "half day morning",
			booking: halfDayBooking(1, 1, testDate, TimeMorning, StatusPending),
			want:    []Slot{SlotMorning},
		},
		{
			name:    "half day evening",
			booking: halfDayBooking(1, 1, testDate, TimeEvening, StatusPending),
			want:    []Slot{SlotEvening},
		},
		{
			name: "half day without time of day is a data error",
			booking: &Booking{
				ID: 1, VenueID: 1, Date: testDate,
				IsFullDay: false, Status: StatusPending,
			},
			wantErr: ErrMissingTimeOfDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OccupiedSlots(tt.booking)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
