package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	memoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/bookings"
)

type fakeBookingRepo struct {
	bookings map[string]domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, memoryRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return memoryRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLedger() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]domain.Booking{
		"RN1-1": {
			ID:            "RN1-1",
			RoomNumber:    1,
			ClientID:      1,
			Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			StartTime:     "09:00",
			DurationHours: 2,
		},
	}}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(testLedger(), nopLogger{})

	booking, err := svc.GetByID(context.Background(), "RN1-1")
	require.NoError(t, err)
	assert.Equal(t, 1, booking.RoomNumber)

	_, err = svc.GetByID(context.Background(), "RN9-9")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	t.Run("removes booking", func(t *testing.T) {
		repo := testLedger()
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Cancel(context.Background(), "RN1-1"))
		assert.Empty(t, repo.bookings)
	})

	t.Run("unknown id reports not found without side effects", func(t *testing.T) {
		repo := testLedger()
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), "RN9-9")
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("repeated cancel is safe", func(t *testing.T) {
		repo := testLedger()
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Cancel(context.Background(), "RN1-1"))
		err := svc.Cancel(context.Background(), "RN1-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
