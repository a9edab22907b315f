package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{"identical windows", 540, 660, 540, 660, true},
		{"partial overlap", 540, 660, 600, 720, true},
		{"contained window", 540, 780, 600, 660, true},
		{"adjacent windows do not overlap", 540, 660, 660, 780, false},
		{"disjoint windows", 540, 600, 720, 780, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WindowsOverlap(tc.startA, tc.endA, tc.startB, tc.endB))
			// Пересечение симметрично
			assert.Equal(t, tc.want, WindowsOverlap(tc.startB, tc.endB, tc.startA, tc.endA))
		})
	}
}

func TestFormatBookingID(t *testing.T) {
	assert.Equal(t, "RN14-38", FormatBookingID(14, 38))
	assert.Equal(t, "RN1-1", FormatBookingID(1, 1))
}

func TestBooking_Window(t *testing.T) {
	b := Booking{StartTime: "09:30", DurationHours: 2}

	start, end, err := b.Window()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, start)
	assert.Equal(t, 11*60+30, end)
}

func TestBooking_OnDate(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	b := Booking{Date: date}

	assert.True(t, b.OnDate(time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)))
	assert.False(t, b.OnDate(date.AddDate(0, 0, 1)))
}

func TestRoom_Satisfies(t *testing.T) {
	room := Room{Number: 1, Computers: 8, BreakoutSeats: 4, HasPrinter: true}

	assert.True(t, room.Satisfies(ResourceProfile{Computers: 4, BreakoutSeats: 4, HasPrinter: true}))

	// Пороговые значения по местам, точное совпадение по оборудованию
	assert.False(t, room.Satisfies(ResourceProfile{Computers: 10, HasPrinter: true}))
	assert.False(t, room.Satisfies(ResourceProfile{Computers: 4}))
	assert.False(t, room.Satisfies(ResourceProfile{Computers: 4, HasPrinter: true, HasSmartboard: true}))
}

func TestClient_HasContactChannel(t *testing.T) {
	phone := "+79990001122"
	empty := ""

	assert.True(t, (&Client{Telephone: &phone}).HasContactChannel())
	assert.False(t, (&Client{}).HasContactChannel())
	assert.False(t, (&Client{Telephone: &empty, Email: &empty}).HasContactChannel())
}
