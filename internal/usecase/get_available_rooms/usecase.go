package get_available_rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/roomfinder"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request запрос доступных комнат на окно времени
type Request struct {
	Profile   domain.ResourceProfile
	Date      time.Time
	StartTime types.TimeString
	Hours     int
}

// Response список комнат, удовлетворяющих всем ограничениям запроса
// Первая комната в списке — та, которую выбрал бы аллокатор
type Response struct {
	Rooms []domain.Room
}

// UseCase use case запроса доступности: показывает, какие комнаты
// удовлетворяют профилю и окну, не фиксируя бронирование
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет запрос доступных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	ledger, err := uc.bookingRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	finder := roomfinder.New(rooms, ledger)
	if err := finder.FilterByWindow(req.Date, req.StartTime, req.Hours); err != nil {
		uc.logger.Error("GetAvailableRooms: filter pipeline failed: %v", err)
		return nil, fmt.Errorf("%w: filter pipeline failed: %v", ErrInternal, err)
	}
	finder.FilterByBreakoutSeats(req.Profile.BreakoutSeats)
	finder.FilterByComputers(req.Profile.Computers)
	finder.FilterByPrinter(req.Profile.HasPrinter)
	finder.FilterBySmartboard(req.Profile.HasSmartboard)

	available := finder.Rooms()

	// Комната с наименьшим числом компьютеров первой: это выбор аллокатора
	sortByComputers(available)

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available on %s at %s for %dh",
		len(available), len(rooms), req.Date.Format(domain.DateFormat), req.StartTime, req.Hours)

	return &Response{Rooms: available}, nil
}

func validateRequest(req *Request) error {
	if req.Profile.Computers < 0 || req.Profile.BreakoutSeats < 0 {
		return fmt.Errorf("%w: resource counts must be 0 or more", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Hours < domain.MinBookingHours {
		return fmt.Errorf("%w: duration must be at least %d hour", ErrInvalidInput, domain.MinBookingHours)
	}

	return nil
}

// sortByComputers ставит комнаты с меньшим числом компьютеров первыми,
// сохраняя исходный порядок при равенстве
func sortByComputers(rooms []domain.Room) {
	for i := 1; i < len(rooms); i++ {
		for j := i; j > 0 && rooms[j].Computers < rooms[j-1].Computers; j-- {
			rooms[j], rooms[j-1] = rooms[j-1], rooms[j]
		}
	}
}
