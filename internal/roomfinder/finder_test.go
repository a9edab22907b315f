package roomfinder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func testRooms() []domain.Room {
	return []domain.Room{
		{Number: 1, Computers: 4, BreakoutSeats: 4, HasPrinter: false, HasSmartboard: false},
		{Number: 2, Computers: 8, BreakoutSeats: 6, HasPrinter: false, HasSmartboard: false},
		{Number: 3, Computers: 12, BreakoutSeats: 8, HasPrinter: true, HasSmartboard: false},
		{Number: 4, Computers: 16, BreakoutSeats: 10, HasPrinter: true, HasSmartboard: true},
	}
}

func booking(id string, room int, date time.Time, start types.TimeString, hours int) domain.Booking {
	return domain.Booking{
		ID:            id,
		RoomNumber:    room,
		ClientID:      1,
		Date:          date,
		StartTime:     start,
		DurationHours: hours,
	}
}

func TestFinder_SnapshotIsolation(t *testing.T) {
	rooms := testRooms()
	f := New(rooms, nil)

	f.FilterByComputers(100)

	// Исходный срез не затронут фильтрацией
	assert.Len(t, rooms, 4)
	assert.Empty(t, f.Rooms())
}

func TestFinder_FilterByComputers(t *testing.T) {
	f := New(testRooms(), nil)
	f.FilterByComputers(10)

	kept := f.Rooms()
	require.Len(t, kept, 2)
	assert.Equal(t, 3, kept[0].Number)
	assert.Equal(t, 4, kept[1].Number)
}

func TestFinder_FilterByEquipmentIsExactMatch(t *testing.T) {
	t.Run("printer required", func(t *testing.T) {
		f := New(testRooms(), nil)
		f.FilterByPrinter(true)

		kept := f.Rooms()
		require.Len(t, kept, 2)
		assert.Equal(t, 3, kept[0].Number)
		assert.Equal(t, 4, kept[1].Number)
	})

	t.Run("printer excluded removes equipped rooms", func(t *testing.T) {
		f := New(testRooms(), nil)
		f.FilterByPrinter(false)

		kept := f.Rooms()
		require.Len(t, kept, 2)
		assert.Equal(t, 1, kept[0].Number)
		assert.Equal(t, 2, kept[1].Number)
	})
}

func TestFinder_FilterByWindow(t *testing.T) {
	t.Run("overlapping booking removes room", func(t *testing.T) {
		ledger := []domain.Booking{
			booking("RN1-1", 1, testDate, "09:00", 2),
		}

		f := New(testRooms(), ledger)
		require.NoError(t, f.FilterByWindow(testDate, "10:00", 2))

		for _, r := range f.Rooms() {
			assert.NotEqual(t, 1, r.Number)
		}
	})

	t.Run("adjacent booking keeps room", func(t *testing.T) {
		// Бронирование 09:00+2ч заканчивается в 11:00, окно [11:00, 13:00) свободно
		ledger := []domain.Booking{
			booking("RN1-1", 1, testDate, "09:00", 2),
		}

		f := New(testRooms(), ledger)
		require.NoError(t, f.FilterByWindow(testDate, "11:00", 2))

		assert.Len(t, f.Rooms(), 4)
	})

	t.Run("booking on another date does not block", func(t *testing.T) {
		otherDate := testDate.AddDate(0, 0, 1)
		ledger := []domain.Booking{
			booking("RN1-1", 1, otherDate, "09:00", 8),
		}

		f := New(testRooms(), ledger)
		require.NoError(t, f.FilterByWindow(testDate, "09:00", 2))

		assert.Len(t, f.Rooms(), 4)
	})

	t.Run("two bookings on same room remove it once", func(t *testing.T) {
		ledger := []domain.Booking{
			booking("RN2-1", 2, testDate, "09:00", 2),
			booking("RN2-2", 2, testDate, "10:00", 2),
		}

		f := New(testRooms(), ledger)
		require.NoError(t, f.FilterByWindow(testDate, "10:00", 1))

		assert.Len(t, f.Rooms(), 3)
	})

	t.Run("malformed booking time surfaces error", func(t *testing.T) {
		ledger := []domain.Booking{
			booking("RN1-1", 1, testDate, "garbage", 2),
		}

		f := New(testRooms(), ledger)
		assert.Error(t, f.FilterByWindow(testDate, "10:00", 1))
	})
}

func TestFinder_BestFit(t *testing.T) {
	t.Run("picks lowest computer count", func(t *testing.T) {
		f := New(testRooms(), nil)

		best, err := f.BestFit(domain.ResourceProfile{Computers: 2}, testDate, "09:00", 2)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, 1, best.Number)
	})

	t.Run("skips busy smallest room", func(t *testing.T) {
		ledger := []domain.Booking{
			booking("RN1-1", 1, testDate, "09:00", 4),
		}

		f := New(testRooms(), ledger)
		best, err := f.BestFit(domain.ResourceProfile{Computers: 2}, testDate, "10:00", 1)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, 2, best.Number)
	})

	t.Run("no room satisfies profile", func(t *testing.T) {
		f := New(testRooms(), nil)

		best, err := f.BestFit(domain.ResourceProfile{Computers: 100}, testDate, "09:00", 1)
		require.NoError(t, err)
		assert.Nil(t, best)
	})

	t.Run("equipment must match exactly", func(t *testing.T) {
		// Запрос без принтера и смартборда не получает комнаты с ними
		f := New(testRooms(), nil)

		best, err := f.BestFit(domain.ResourceProfile{Computers: 10}, testDate, "09:00", 1)
		require.NoError(t, err)
		assert.Nil(t, best)
	})

	t.Run("stable choice on equal counts", func(t *testing.T) {
		rooms := []domain.Room{
			{Number: 7, Computers: 4},
			{Number: 5, Computers: 4},
		}

		f := New(rooms, nil)
		best, err := f.BestFit(domain.ResourceProfile{}, testDate, "09:00", 1)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, 7, best.Number)
	})
}

func TestBookingFinder_FilterByClient(t *testing.T) {
	ledger := []domain.Booking{
		booking("RN1-1", 1, testDate, "09:00", 1),
		booking("RN2-2", 2, testDate, "10:00", 1),
		booking("RN1-3", 1, testDate, "12:00", 1),
	}
	ledger[1].ClientID = 42

	bf := NewBookingFinder(ledger)
	bf.FilterByClient(42)

	kept := bf.Bookings()
	require.Len(t, kept, 1)
	assert.Equal(t, "RN2-2", kept[0].ID)
}
