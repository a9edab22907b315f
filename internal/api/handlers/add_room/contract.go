package add_room

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomService интерфейс сервиса комнат
type RoomService interface {
	AddRoom(ctx context.Context, room domain.Room) (*domain.Room, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
