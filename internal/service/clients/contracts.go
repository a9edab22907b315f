package clients

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ClientRepository интерфейс хранилища директории клиентов
type ClientRepository interface {
	Add(ctx context.Context, client domain.Client) (*domain.Client, bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByTelephone(ctx context.Context, telephone string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
