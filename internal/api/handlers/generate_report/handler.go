package generate_report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reports"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgClientNotFound  = "клиент не найден"
)

// ReportBookingResponse один блок отчета в HTTP-представлении
type ReportBookingResponse struct {
	BookingID   string `json:"bookingId"`
	RoomNumber  int    `json:"roomNumber"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	Hours       int    `json:"hours"`
}

// ReportResponse ответ генерации отчета: путь к файлу и его содержимое
type ReportResponse struct {
	Path     string                  `json:"path"`
	Text     string                  `json:"text"`
	Bookings []ReportBookingResponse `json:"bookings"`
}

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings/report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIDStr := mux.Vars(r)["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings/report - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	report, err := h.service.GenerateClientReport(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id}/bookings/report - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{id}/bookings/report - Failed to generate report: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &ReportResponse{
		Path:     report.Path,
		Text:     report.Text,
		Bookings: make([]ReportBookingResponse, 0, len(report.Bookings)),
	}
	for _, booking := range report.Bookings {
		resp.Bookings = append(resp.Bookings, ReportBookingResponse{
			BookingID:   booking.ID,
			RoomNumber:  booking.RoomNumber,
			BookingDate: booking.Date.Format(domain.DateFormat),
			StartTime:   booking.StartTime.String(),
			Hours:       booking.DurationHours,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
