package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 14, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("14:30")
		require.NoError(t, err)
		assert.Equal(t, "14:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("14.30")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_TotalMinutes(t *testing.T) {
	t.Run("midnight", func(t *testing.T) {
		minutes, err := TimeString("00:00").TotalMinutes()
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("afternoon", func(t *testing.T) {
		minutes, err := TimeString("13:45").TotalMinutes()
		require.NoError(t, err)
		assert.Equal(t, 13*60+45, minutes)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := TimeString("garbage").TotalMinutes()
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := TimeString("09:00").AddMinutes(120)
		require.NoError(t, err)
		assert.Equal(t, "11:00", ts.String())
	})

	t.Run("exactly end of day", func(t *testing.T) {
		ts, err := TimeString("22:00").AddMinutes(120)
		require.NoError(t, err)
		assert.Equal(t, "24:00", ts.String())
	})

	t.Run("past end of day", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrTimeOutOfDay)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.True(t, TimeString("11:00").IsAfter("09:59"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
