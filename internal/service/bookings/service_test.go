package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingStorage "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	"github.com/avetra/venue-booking-service/internal/service/bookings/models"
)

var testDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	booking *domain.Booking

	cancelledID     int64
	cancelReason    string
	statusUpdates   []domain.BookingStatus
	depositAmount   float64
	depositPaidFlag bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) UpdateDeposit(_ context.Context, _ int64, depositAmount float64, depositPaid bool) error {
	f.depositAmount = depositAmount
	f.depositPaidFlag = depositPaid
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		VenueID:   1,
		EventName: "Birthday party",
		EventType: domain.EventBirthday,
		Date:      testDate,
		IsFullDay: true,
		Status:    domain.StatusPending,
	}
}

func TestCancel_RequiresReason(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_PassesReasonToRepository(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "client request"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "client request", repo.cancelReason)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(&fakeBookingRepo{booking: booking}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "again"})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_CancelViaStatusEndpointRejected(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	assert.ErrorIs(t, err, ErrCancelViaEndpoint)
}

func TestUpdateStatus_CancelledBookingStaysCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(&fakeBookingRepo{booking: booking}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_PendingToConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	require.Len(t, repo.statusUpdates, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[0])
}

func TestRecordDeposit_AutoConfirmsPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.RecordDeposit(context.Background(), 1, &models.RecordDepositRequest{DepositAmount: 10000})

	require.NoError(t, err)
	assert.Equal(t, 10000.0, repo.depositAmount)
	assert.True(t, repo.depositPaidFlag)
	require.Len(t, repo.statusUpdates, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[0])
}

func TestRecordDeposit_ConfirmedBookingKeepsStatus(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, nopLogger{})

	err := svc.RecordDeposit(context.Background(), 1, &models.RecordDepositRequest{DepositAmount: 5000})

	require.NoError(t, err)
	assert.Empty(t, repo.statusUpdates)
}

func TestRecordDeposit_NonPositiveAmount(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	err := svc.RecordDeposit(context.Background(), 1, &models.RecordDepositRequest{DepositAmount: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordDeposit_CancelledBooking(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(&fakeBookingRepo{booking: booking}, nopLogger{})

	err := svc.RecordDeposit(context.Background(), 1, &models.RecordDepositRequest{DepositAmount: 5000})

	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
