package domain

// Room комната с фиксированным набором ресурсов
// Номер комнаты назначается извне, уникален и не переиспользуется
// После создания комната не изменяется
type Room struct {
	Number        int
	Computers     int
	BreakoutSeats int
	HasPrinter    bool
	HasSmartboard bool
}

// Satisfies возвращает true, если комната удовлетворяет профилю ресурсов:
// пороговые значения по местам и точное совпадение флагов оборудования
func (r *Room) Satisfies(p ResourceProfile) bool {
	return r.Computers >= p.Computers &&
		r.BreakoutSeats >= p.BreakoutSeats &&
		r.HasPrinter == p.HasPrinter &&
		r.HasSmartboard == p.HasSmartboard
}

// ResourceProfile запрошенный профиль ресурсов для бронирования
type ResourceProfile struct {
	Computers     int
	BreakoutSeats int
	HasPrinter    bool
	HasSmartboard bool
}
