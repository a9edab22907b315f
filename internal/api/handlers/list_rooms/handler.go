package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	Number        int  `json:"number"`
	Computers     int  `json:"computers"`
	BreakoutSeats int  `json:"breakoutSeats"`
	Printer       bool `json:"printer"`
	Smartboard    bool `json:"smartboard"`
}

// RoomListResponse ответ со списком комнат инвентаря
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
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

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomList, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := RoomListResponse{Rooms: make([]RoomResponse, 0, len(roomList))}
	for _, room := range roomList {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			Number:        room.Number,
			Computers:     room.Computers,
			BreakoutSeats: room.BreakoutSeats,
			Printer:       room.HasPrinter,
			Smartboard:    room.HasSmartboard,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &resp)
}
