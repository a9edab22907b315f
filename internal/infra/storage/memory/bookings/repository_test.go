package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/snapshot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func newBooking(room int) domain.Booking {
	return domain.Booking{
		RoomNumber:    room,
		ClientID:      1,
		Date:          testDate,
		StartTime:     "09:00",
		DurationHours: 2,
	}
}

func TestRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewRepository(snapshot.NewStore(t.TempDir()), nopLogger{}, nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, newBooking(14))
	require.NoError(t, err)
	assert.Equal(t, "RN14-1", first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// Счетчик общий для всех комнат
	second, err := repo.Create(ctx, newBooking(3))
	require.NoError(t, err)
	assert.Equal(t, "RN3-2", second.ID)
}

func TestRepository_DeleteUnknownIDIsSafe(t *testing.T) {
	repo := NewRepository(snapshot.NewStore(t.TempDir()), nopLogger{}, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking(1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	// Повторная отмена сообщает not found, журнал не меняется
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrBookingNotFound)

	ledger, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestRepository_CounterSurvivesCancellation(t *testing.T) {
	repo := NewRepository(snapshot.NewStore(t.TempDir()), nopLogger{}, nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, newBooking(1))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	// Отмена не откатывает счетчик: ID не переиспользуются
	second, err := repo.Create(ctx, newBooking(1))
	require.NoError(t, err)
	assert.Equal(t, "RN1-2", second.ID)
}

func TestRepository_SnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewRepository(snapshot.NewStore(dir), nopLogger{}, nil)
	created, err := repo.Create(ctx, newBooking(5))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking(6))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	// Новый репозиторий над тем же каталогом видит журнал и счетчик
	reloaded := NewRepository(snapshot.NewStore(dir), nopLogger{}, nil)

	ledger, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "RN6-2", ledger[0].ID)

	third, err := reloaded.Create(ctx, newBooking(7))
	require.NoError(t, err)
	assert.Equal(t, "RN7-3", third.ID)
}

func TestRepository_ListIsSortedCopy(t *testing.T) {
	repo := NewRepository(snapshot.NewStore(t.TempDir()), nopLogger{}, nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking(2))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking(1))
	require.NoError(t, err)

	ledger, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.True(t, ledger[0].ID < ledger[1].ID)

	// Мутация копии не затрагивает журнал
	ledger[0].RoomNumber = 99
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, 99, again[0].RoomNumber)
}
