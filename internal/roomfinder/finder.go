package roomfinder

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Finder сужает пул комнат-кандидатов последовательными ограничениями
//
// Создается из снапшотов инвентаря комнат и журнала бронирований, снятых
// в момент конструирования: фильтрация работает над приватной копией и не
// затрагивает разделяемое состояние, а журнал не меняется посреди запроса
type Finder struct {
	candidates []domain.Room
	bookings   []domain.Booking
}

// New создает Finder над копиями переданных снапшотов
func New(rooms []domain.Room, bookings []domain.Booking) *Finder {
	candidates := make([]domain.Room, len(rooms))
	copy(candidates, rooms)

	ledger := make([]domain.Booking, len(bookings))
	copy(ledger, bookings)

	return &Finder{candidates: candidates, bookings: ledger}
}

// Rooms возвращает копию текущего пула кандидатов
func (f *Finder) Rooms() []domain.Room {
	out := make([]domain.Room, len(f.candidates))
	copy(out, f.candidates)
	return out
}

// FilterByComputers удаляет комнаты, в которых компьютеров меньше min
func (f *Finder) FilterByComputers(min int) {
	f.removeIf(func(r domain.Room) bool { return r.Computers < min })
}

// FilterByBreakoutSeats удаляет комнаты, в которых переговорных мест меньше min
func (f *Finder) FilterByBreakoutSeats(min int) {
	f.removeIf(func(r domain.Room) bool { return r.BreakoutSeats < min })
}

// FilterByPrinter удаляет комнаты, у которых наличие принтера не совпадает с has
func (f *Finder) FilterByPrinter(has bool) {
	f.removeIf(func(r domain.Room) bool { return r.HasPrinter != has })
}

// FilterBySmartboard удаляет комнаты, у которых наличие смартборда не совпадает с has
func (f *Finder) FilterBySmartboard(has bool) {
	f.removeIf(func(r domain.Room) bool { return r.HasSmartboard != has })
}

// FilterByWindow удаляет комнаты, занятые в запрошенном окне
//
// В проверке пересечения участвуют только бронирования на запрошенную дату:
// бронирование той же комнаты на другую дату пул не сужает. Пересечение
// считается с точностью до минуты над полуоткрытыми окнами, поэтому
// бронирование, заканчивающееся ровно в момент начала запрошенного окна,
// комнату не блокирует
func (f *Finder) FilterByWindow(date time.Time, start types.TimeString, hours int) error {
	reqStart, err := start.TotalMinutes()
	if err != nil {
		return fmt.Errorf("roomfinder: invalid requested start time: %w", err)
	}
	reqEnd := reqStart + hours*60

	for i := range f.bookings {
		b := &f.bookings[i]
		if !b.OnDate(date) {
			continue
		}

		bStart, bEnd, err := b.Window()
		if err != nil {
			return fmt.Errorf("roomfinder: booking %s has invalid start time: %w", b.ID, err)
		}

		// Повторное удаление уже удаленной комнаты безвредно
		if domain.WindowsOverlap(reqStart, reqEnd, bStart, bEnd) {
			f.removeRoom(b.RoomNumber)
		}
	}

	return nil
}

// BestFit прогоняет полный конвейер ограничений и возвращает наиболее
// подходящую комнату: наименьшую достаточную по числу компьютеров, чтобы
// не занимать большие комнаты под маленькие заявки
//
// Возвращает nil, если ни одна комната не удовлетворяет всем ограничениям
func (f *Finder) BestFit(profile domain.ResourceProfile, date time.Time, start types.TimeString, hours int) (*domain.Room, error) {
	if err := f.FilterByWindow(date, start, hours); err != nil {
		return nil, err
	}
	f.FilterByBreakoutSeats(profile.BreakoutSeats)
	f.FilterByComputers(profile.Computers)
	f.FilterByPrinter(profile.HasPrinter)
	f.FilterBySmartboard(profile.HasSmartboard)

	return f.lowestComputers(), nil
}

// lowestComputers возвращает кандидата с наименьшим числом компьютеров
// При равенстве выбирается первый по исходному порядку пула
func (f *Finder) lowestComputers() *domain.Room {
	if len(f.candidates) == 0 {
		return nil
	}

	best := f.candidates[0]
	for _, r := range f.candidates[1:] {
		if r.Computers < best.Computers {
			best = r
		}
	}

	return &best
}

func (f *Finder) removeIf(fails func(domain.Room) bool) {
	kept := f.candidates[:0]
	for _, r := range f.candidates {
		if !fails(r) {
			kept = append(kept, r)
		}
	}
	f.candidates = kept
}

func (f *Finder) removeRoom(number int) {
	f.removeIf(func(r domain.Room) bool { return r.Number == number })
}
