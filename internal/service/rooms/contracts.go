package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс хранилища инвентаря комнат
type RoomRepository interface {
	Add(ctx context.Context, room domain.Room) (*domain.Room, bool, error)
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
