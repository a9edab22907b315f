package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Booking подтвержденное бронирование комнаты
// ID в формате "RN<номер комнаты>-<глобальный счетчик>", например RN14-38
// Счетчик общий для всех комнат и увеличивается только при успешном создании
// Комната и клиент хранятся по идентификаторам, бронирование их не копирует
type Booking struct {
	ID            string
	RoomNumber    int
	ClientID      int64
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	CreatedAt     time.Time
}

// OnDate возвращает true, если бронирование приходится на указанную дату
func (b *Booking) OnDate(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Window возвращает окно бронирования в минутах от начала суток
// Окно полуоткрытое: [start, start+duration)
func (b *Booking) Window() (start, end int, err error) {
	start, err = b.StartTime.TotalMinutes()
	if err != nil {
		return 0, 0, err
	}
	return start, start + b.DurationHours*60, nil
}

// FormatBookingID строит ID бронирования из номера комнаты и значения счетчика
func FormatBookingID(roomNumber int, seq int64) string {
	return fmt.Sprintf("RN%d-%d", roomNumber, seq)
}

// WindowsOverlap проверяет пересечение двух полуоткрытых окон в минутах
// Окна [startA, endA) и [startB, endB) пересекаются, если startA < endB && startB < endA
// Граничащие окна (конец одного равен началу другого) не пересекаются
func WindowsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}
