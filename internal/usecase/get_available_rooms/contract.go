package get_available_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс инвентаря комнат
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
