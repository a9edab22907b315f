package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

type fakeRoomRepo struct {
	rooms []domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]domain.Room, error) {
	return f.rooms, nil
}

type fakeBookingRepo struct {
	ledger []domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	return f.ledger, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []domain.Room{
		{Number: 1, Computers: 4},
		{Number: 2, Computers: 8},
		{Number: 3, Computers: 2},
	}}

	t.Run("allocator choice comes first", func(t *testing.T) {
		uc := NewUseCase(rooms, &fakeBookingRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			Profile:   domain.ResourceProfile{Computers: 1},
			Date:      testDate,
			StartTime: "09:00",
			Hours:     2,
		})
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 3)
		assert.Equal(t, 3, resp.Rooms[0].Number)
		assert.Equal(t, 1, resp.Rooms[1].Number)
		assert.Equal(t, 2, resp.Rooms[2].Number)
	})

	t.Run("busy rooms are excluded", func(t *testing.T) {
		bookings := &fakeBookingRepo{ledger: []domain.Booking{
			{ID: "RN3-1", RoomNumber: 3, Date: testDate, StartTime: "09:00", DurationHours: 4},
		}}
		uc := NewUseCase(rooms, bookings, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			Profile:   domain.ResourceProfile{Computers: 1},
			Date:      testDate,
			StartTime: "10:00",
			Hours:     1,
		})
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 2)
		assert.Equal(t, 1, resp.Rooms[0].Number)
	})

	t.Run("query does not modify the ledger", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		uc := NewUseCase(rooms, bookings, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			Profile:   domain.ResourceProfile{Computers: 1},
			Date:      testDate,
			StartTime: "09:00",
			Hours:     1,
		})
		require.NoError(t, err)
		assert.Empty(t, bookings.ledger)
	})

	t.Run("validation errors", func(t *testing.T) {
		uc := NewUseCase(rooms, &fakeBookingRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			Profile:   domain.ResourceProfile{Computers: -1},
			Date:      testDate,
			StartTime: "09:00",
			Hours:     1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{
			Date:      testDate,
			StartTime: "09:00",
			Hours:     0,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
