package create_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс инвентаря комнат
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// ClientRepository интерфейс директории клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Add(ctx context.Context, client domain.Client) (*domain.Client, bool, error)
}

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
