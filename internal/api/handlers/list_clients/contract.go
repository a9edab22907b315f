package list_clients

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ClientService интерфейс директории клиентов
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
