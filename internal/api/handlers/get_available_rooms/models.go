package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// AvailableRoomResponse HTTP response model одной комнаты
type AvailableRoomResponse struct {
	Number        int  `json:"number"`
	Computers     int  `json:"computers"`
	BreakoutSeats int  `json:"breakoutSeats"`
	Printer       bool `json:"printer"`
	Smartboard    bool `json:"smartboard"`
}

// AvailableRoomsResponse список доступных комнат
// Первая комната — выбор аллокатора при тех же параметрах
type AvailableRoomsResponse struct {
	Rooms []AvailableRoomResponse `json:"rooms"`
}

// ToUseCaseRequest преобразует разобранные query-параметры в запрос use case
func ToUseCaseRequest(dateStr, startTimeStr string, hours, computers, breakoutSeats int, printer, smartboard bool) (*getAvailableRooms.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableRooms.Request{
		Profile: domain.ResourceProfile{
			Computers:     computers,
			BreakoutSeats: breakoutSeats,
			HasPrinter:    printer,
			HasSmartboard: smartboard,
		},
		Date:      date,
		StartTime: startTime,
		Hours:     hours,
	}, nil
}

// ToResponse преобразует результат use case в HTTP модель
func ToResponse(result *getAvailableRooms.Response) *AvailableRoomsResponse {
	resp := &AvailableRoomsResponse{Rooms: make([]AvailableRoomResponse, 0, len(result.Rooms))}
	for _, room := range result.Rooms {
		resp.Rooms = append(resp.Rooms, AvailableRoomResponse{
			Number:        room.Number,
			Computers:     room.Computers,
			BreakoutSeats: room.BreakoutSeats,
			Printer:       room.HasPrinter,
			Smartboard:    room.HasSmartboard,
		})
	}
	return resp
}
