package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/pkg/ptr"
)

func TestResolvePricing(t *testing.T) {
	venue := &Venue{
		ID:            1,
		Name:          "Grand Hall",
		TotalAmount:   5000,
		DepositAmount: 1000,
		FullDayAmount: 8000,
		HalfDayAmount: 4500,
	}

	tests := []struct {
		name       string
		isFullDay  bool
		timeOfDay  *TimeOfDay
		wantAmount float64
		wantWindow TimeWindow
		wantErr    error
	}{
		{
			name:       "full day",
			isFullDay:  true,
			wantAmount: 8000,
			wantWindow: FullDayWindow,
		},
		{
			name:       "half day morning",
			timeOfDay:  ptr.Ptr(TimeMorning),
			wantAmount: 4500,
			wantWindow: MorningWindow,
		},
		{
			name:       "half day evening",
			timeOfDay:  ptr.Ptr(TimeEvening),
			wantAmount: 4500,
			wantWindow: EveningWindow,
		},
		{
			name:    "half day without time of day",
			wantErr: ErrMissingTimeOfDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePricing(venue, tt.isFullDay, tt.timeOfDay)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantWindow, got.Window)
			assert.Equal(t, venue.DepositAmount, got.DepositAmount)
		})
	}
}

func TestResolvePricing_FallbackToTotalAmount(t *testing.T) {
	venue := &Venue{ID: 2, Name: "Annex", TotalAmount: 3000}

	got, err := ResolvePricing(venue, true, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(3000), got.Amount)

	got, err = ResolvePricing(venue, false, ptr.Ptr(TimeMorning))
	require.NoError(t, err)
	assert.Equal(t, float64(3000), got.Amount)
}

func TestResolvePricing_NoAmountsConfigured(t *testing.T) {
	venue := &Venue{ID: 3, Name: "Unpriced"}

	_, err := ResolvePricing(venue, true, nil)
	assert.ErrorIs(t, err, ErrNoPricing)
}

func TestWindowFor_SingleSourceOfWindows(t *testing.T) {
	full, err := WindowFor(true, nil)
	require.NoError(t, err)
	assert.Equal(t, FullDayWindow, full)

	morning, err := WindowFor(false, ptr.Ptr(TimeMorning))
	require.NoError(t, err)
	evening, err2 := WindowFor(false, ptr.Ptr(TimeEvening))
	require.NoError(t, err2)

	// the two half-day windows never overlap
	assert.True(t, morning.End.IsBefore(evening.Start) || morning.End == evening.Start)
	// each window is well-formed
	for _, w := range []TimeWindow{full, morning, evening} {
		assert.True(t, w.Start.IsBefore(w.End))
	}
}
