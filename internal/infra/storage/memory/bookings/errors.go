package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrCorruptSnapshot возвращается, когда загруженный снапшот нарушает
	// структурные инварианты коллекции
	ErrCorruptSnapshot = errors.New("bookings.repository: corrupt snapshot")
)
