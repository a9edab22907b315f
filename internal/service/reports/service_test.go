package reports

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	ledger []domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	return f.ledger, nil
}

type fakeClientRepo struct {
	clients map[int64]domain.Client
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return &c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestService_GenerateClientReport(t *testing.T) {
	bookings := &fakeBookingRepo{ledger: []domain.Booking{
		{ID: "RN1-1", RoomNumber: 1, ClientID: 7, Date: testDate, StartTime: "09:00", DurationHours: 1},
		{ID: "RN2-2", RoomNumber: 2, ClientID: 8, Date: testDate, StartTime: "10:00", DurationHours: 2},
		{ID: "RN3-3", RoomNumber: 3, ClientID: 7, Date: testDate, StartTime: "14:00", DurationHours: 3},
	}}
	clients := &fakeClientRepo{clients: map[int64]domain.Client{
		7: {ID: 7, FirstName: "Anna", LastName: "Petrova", Email: ptr.Ptr("anna@example.com")},
	}}

	dir := t.TempDir()
	svc := NewService(bookings, clients, dir, nopLogger{})

	report, err := svc.GenerateClientReport(context.Background(), 7)
	require.NoError(t, err)

	// Попадают только бронирования запрошенного клиента
	require.Len(t, report.Bookings, 2)
	assert.Equal(t, "RN1-1", report.Bookings[0].ID)
	assert.Equal(t, "RN3-3", report.Bookings[1].ID)

	assert.Contains(t, report.Text, "Booking ID: RN1-1")
	assert.Contains(t, report.Text, "Client: Anna Petrova")
	assert.Contains(t, report.Text, "Room: 3")
	assert.Contains(t, report.Text, "Date: 2026-09-14")
	assert.Contains(t, report.Text, "Start Time: 09:00")
	assert.Contains(t, report.Text, "Length: 1 hour\n")
	assert.Contains(t, report.Text, "Length: 3 hours\n")

	// Файл отчета записан с тем же содержимым
	data, err := os.ReadFile(report.Path)
	require.NoError(t, err)
	assert.Equal(t, report.Text, string(data))
}

func TestService_GenerateClientReport_UnknownClient(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeClientRepo{}, t.TempDir(), nopLogger{})

	_, err := svc.GenerateClientReport(context.Background(), 99)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_GenerateClientReport_EmptyLedger(t *testing.T) {
	clients := &fakeClientRepo{clients: map[int64]domain.Client{
		7: {ID: 7, FirstName: "Anna", LastName: "Petrova", Email: ptr.Ptr("anna@example.com")},
	}}
	svc := NewService(&fakeBookingRepo{}, clients, t.TempDir(), nopLogger{})

	report, err := svc.GenerateClientReport(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, report.Bookings)
	assert.Empty(t, report.Text)

	// Пустой отчет все равно сохраняется в файл
	_, statErr := os.Stat(report.Path)
	assert.NoError(t, statErr)
}
