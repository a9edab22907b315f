package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// NewClient данные для создания клиента прямо в заявке на бронирование
// Если канал связи совпадает с существующим клиентом, бронирование
// привязывается к существующему клиенту
type NewClient struct {
	FirstName string
	LastName  string
	Telephone *string
	Email     *string
}

// Request заявка на бронирование
// Клиент задается либо идентификатором существующего (ClientID),
// либо данными нового (Client) — ровно одним из двух способов
type Request struct {
	Profile   domain.ResourceProfile
	Date      time.Time
	StartTime types.TimeString
	Hours     int
	ClientID  *int64
	Client    *NewClient
}

// Response результат успешного бронирования
type Response struct {
	BookingID     string
	RoomNumber    int
	Room          domain.Room
	Client        domain.Client
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	CreatedAt     time.Time
}
