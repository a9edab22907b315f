package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("creates booking", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			BookingID:     "RN1-1",
			RoomNumber:    1,
			Room:          domain.Room{Number: 1, Computers: 4},
			Client:        domain.Client{ID: 7, FirstName: "Anna", LastName: "Petrova"},
			Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			StartTime:     "09:00",
			DurationHours: 2,
			CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		}}

		rec := doRequest(t, uc, `{
			"computers": 2,
			"bookingDate": "2026-09-14",
			"startTime": "09:00",
			"hours": 2,
			"clientId": 7
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "RN1-1", resp.BookingID)
		assert.Equal(t, "Anna Petrova", resp.ClientName)
		assert.Equal(t, "2026-09-14", resp.BookingDate)

		require.NotNil(t, uc.gotReq)
		assert.Equal(t, 2, uc.gotReq.Profile.Computers)
		require.NotNil(t, uc.gotReq.ClientID)
		assert.Equal(t, int64(7), *uc.gotReq.ClientID)
	})

	t.Run("no room maps to 409", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrNoRoomAvailable}

		rec := doRequest(t, uc, `{
			"bookingDate": "2026-09-14",
			"startTime": "09:00",
			"hours": 2,
			"clientId": 7
		}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown client maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrClientNotFound}

		rec := doRequest(t, uc, `{
			"bookingDate": "2026-09-14",
			"startTime": "09:00",
			"hours": 2,
			"clientId": 99
		}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid input maps to 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrInvalidInput}

		rec := doRequest(t, uc, `{
			"bookingDate": "2026-09-14",
			"startTime": "09:00",
			"hours": 0,
			"clientId": 7
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"bookingDate": "2026-09-14", "surprise": 1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := doRequest(t, uc, `{
			"bookingDate": "14.09.2026",
			"startTime": "09:00",
			"hours": 2,
			"clientId": 7
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.gotReq)
	})

	t.Run("inline client passes through", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			Client: domain.Client{ID: 1, FirstName: "Boris", LastName: "Ivanov", Email: ptr.Ptr("boris@example.com")},
			Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		}}

		rec := doRequest(t, uc, `{
			"bookingDate": "2026-09-14",
			"startTime": "09:00",
			"hours": 2,
			"client": {"firstName": "Boris", "lastName": "Ivanov", "email": "boris@example.com"}
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.gotReq)
		require.NotNil(t, uc.gotReq.Client)
		assert.Equal(t, "Boris", uc.gotReq.Client.FirstName)
		assert.Nil(t, uc.gotReq.ClientID)
	})
}
