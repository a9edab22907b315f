package add_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры комнаты"
)

// AddRoomRequest HTTP request model
type AddRoomRequest struct {
	Number        int  `json:"number"`
	Computers     int  `json:"computers"`
	BreakoutSeats int  `json:"breakoutSeats"`
	Printer       bool `json:"printer"`
	Smartboard    bool `json:"smartboard"`
}

// RoomResponse HTTP response model
// created=false означает, что номер комнаты уже занят и возвращена
// существующая запись
type RoomResponse struct {
	Number        int  `json:"number"`
	Computers     int  `json:"computers"`
	BreakoutSeats int  `json:"breakoutSeats"`
	Printer       bool `json:"printer"`
	Smartboard    bool `json:"smartboard"`
	Created       bool `json:"created"`
}

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, created, err := h.service.AddRoom(r.Context(), domain.Room{
		Number:        req.Number,
		Computers:     req.Computers,
		BreakoutSeats: req.BreakoutSeats,
		HasPrinter:    req.Printer,
		HasSmartboard: req.Smartboard,
	})
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}

		h.logger.Error("POST /rooms - Failed to add room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	handlers.RespondJSON(w, status, &RoomResponse{
		Number:        room.Number,
		Computers:     room.Computers,
		BreakoutSeats: room.BreakoutSeats,
		Printer:       room.HasPrinter,
		Smartboard:    room.HasSmartboard,
		Created:       created,
	})
}
