package add_client

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ClientService интерфейс директории клиентов
type ClientService interface {
	AddClient(ctx context.Context, client domain.Client) (*domain.Client, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
