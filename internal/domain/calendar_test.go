package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorateDay(t *testing.T) {
	tests := []struct {
		name      string
		bookings  []*Booking
		want      DayDecoration
		wantCount int
	}{
		{
			name: "empty date",
			want: DecorationNone,
		},
		{
			name: "confirmed wins over pending",
			bookings: []*Booking{
				halfDayBooking(1, 1, testDate, TimeMorning, StatusPending),
				halfDayBooking(2, 1, testDate, TimeEvening, StatusConfirmed),
			},
			want:      DecorationConfirmed,
			wantCount: 2,
		},
		{
			name: "only pending",
			bookings: []*Booking{
				halfDayBooking(1, 1, testDate, TimeMorning, StatusPending),
			},
			want:      DecorationPending,
			wantCount: 1,
		},
		{
			name: "only cancelled shows audit decoration with zero badge",
			bookings: []*Booking{
				fullDayBooking(1, 1, testDate, StatusCancelled),
			},
			want:      DecorationCancelled,
			wantCount: 0,
		},
		{
			name: "cancelled does not count toward the badge",
			bookings: []*Booking{
				fullDayBooking(1, 1, testDate, StatusCancelled),
				halfDayBooking(2, 1, testDate, TimeMorning, StatusConfirmed),
			},
			want:      DecorationConfirmed,
			wantCount: 1,
		},
		{
			name: "other dates ignored",
			bookings: []*Booking{
				fullDayBooking(1, 1, testDate.AddDate(0, 0, 3), StatusConfirmed),
			},
			want: DecorationNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := DecorateDay(testDate, tt.bookings)
			assert.Equal(t, tt.want, day.Decoration)
			assert.Equal(t, tt.wantCount, day.Count)
		})
	}
}

func TestDecorateRange(t *testing.T) {
	from := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC) // time component is dropped
	to := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	bookings := []*Booking{
		fullDayBooking(1, 1, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), StatusConfirmed),
	}

	days := DecorateRange(from, to, bookings)

	require.Len(t, days, 3)
	assert.Equal(t, DecorationNone, days[0].Decoration)
	assert.Equal(t, DecorationConfirmed, days[1].Decoration)
	assert.Equal(t, 1, days[1].Count)
	assert.Equal(t, DecorationNone, days[2].Decoration)
}
