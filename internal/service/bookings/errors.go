package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// При отмене это сигнал вызывающей стороне, а не фатальная ошибка:
	// журнал в этом случае не меняется, и повторная отмена безопасна
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
