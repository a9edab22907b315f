package get_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID   string `json:"bookingId"`
	RoomNumber  int    `json:"roomNumber"`
	ClientID    int64  `json:"clientId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	Hours       int    `json:"hours"`
	CreatedAt   string `json:"createdAt"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /bookings/%s - Failed to get booking: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		BookingID:   booking.ID,
		RoomNumber:  booking.RoomNumber,
		ClientID:    booking.ClientID,
		BookingDate: booking.Date.Format(domain.DateFormat),
		StartTime:   booking.StartTime.String(),
		Hours:       booking.DurationHours,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	})
}
