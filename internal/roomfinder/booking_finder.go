package roomfinder

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// BookingFinder сужает список бронирований по критериям отчетов
// Использует тот же механизм удаления из приватной копии, что и Finder
type BookingFinder struct {
	bookings []domain.Booking
}

// NewBookingFinder создает BookingFinder над копией снапшота журнала
func NewBookingFinder(bookings []domain.Booking) *BookingFinder {
	ledger := make([]domain.Booking, len(bookings))
	copy(ledger, bookings)
	return &BookingFinder{bookings: ledger}
}

// FilterByClient оставляет только бронирования указанного клиента
func (f *BookingFinder) FilterByClient(clientID int64) {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
}

// Bookings возвращает копию текущего списка
func (f *BookingFinder) Bookings() []domain.Booking {
	out := make([]domain.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out
}
