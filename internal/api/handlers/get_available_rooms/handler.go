package get_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала обязательно"
	msgMissingHours     = "длительность обязательна"
	msgInvalidHours     = "некорректная длительность"
	msgInvalidCount     = "некорректное значение ресурса"
	msgInvalidFlag      = "некорректное значение флага оборудования"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// hours (required), computers, breakoutSeats, printer, smartboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := query.Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /rooms/available - Missing start time")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	hoursStr := query.Get("hours")
	if hoursStr == "" {
		h.logger.Warn("GET /rooms/available - Missing hours")
		handlers.RespondBadRequest(w, msgMissingHours)
		return
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	computers, err := parseCount(query.Get("computers"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid computers: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	breakoutSeats, err := parseCount(query.Get("breakoutSeats"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid breakoutSeats: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	printer, err := parseFlag(query.Get("printer"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid printer flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	smartboard, err := parseFlag(query.Get("smartboard"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid smartboard flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, startTimeStr, hours, computers, breakoutSeats, printer, smartboard)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date or time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/available - Failed to query availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToResponse(result))
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseFlag(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
