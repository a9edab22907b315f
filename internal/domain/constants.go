package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения бронирования
const (
	// MinBookingHours минимальная длительность бронирования в часах
	MinBookingHours = 1

	// MaxBookingHours максимальная длительность: бронирование не выходит за сутки
	MaxBookingHours = 24
)

// Ключи хранилищ для персистентности снапшотов
const (
	StoreRooms    = "rooms"
	StoreClients  = "clients"
	StoreBookings = "bookings"
)
