package domain

import "errors"

var (
	// ErrNoPricing returned when neither the slot-specific amount nor the
	// generic TotalAmount is configured for the venue. A silent zero price
	// is worse than an error.
	ErrNoPricing = errors.New("domain: venue has no amount configured for this slot")
)

// Pricing resolved defaults to stamp onto a candidate booking.
// The user may still override the amount; the window gives the default
// start/end times.
type Pricing struct {
	Amount        float64
	DepositAmount float64
	Window        TimeWindow
}

// ResolvePricing resolves the default amount and time window for a slot
// selection. Full day uses FullDayAmount, half day uses HalfDayAmount;
// either falls back to the venue's generic TotalAmount when unset.
func ResolvePricing(venue *Venue, isFullDay bool, timeOfDay *TimeOfDay) (Pricing, error) {
	window, err := WindowFor(isFullDay, timeOfDay)
	if err != nil {
		return Pricing{}, err
	}

	amount := venue.HalfDayAmount
	if isFullDay {
		amount = venue.FullDayAmount
	}
	if amount == 0 {
		amount = venue.TotalAmount
	}
	if amount == 0 {
		return Pricing{}, ErrNoPricing
	}

	return Pricing{
		Amount:        amount,
		DepositAmount: venue.DepositAmount,
		Window:        window,
	}, nil
}
