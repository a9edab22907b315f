package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	memoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/rooms"
	pgRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/rooms"
)

// Service сервис инвентаря комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// AddRoom добавляет комнату в инвентарь
// Существующий номер комнаты не создает дубликат: возвращается текущая
// запись с created=false, и вызывающая сторона решает, что с этим делать
func (s *Service) AddRoom(ctx context.Context, room domain.Room) (*domain.Room, bool, error) {
	if room.Number < 0 {
		return nil, false, fmt.Errorf("%w: room number must be 0 or more", ErrInvalidInput)
	}
	if room.Computers < 0 {
		return nil, false, fmt.Errorf("%w: computers must be 0 or more", ErrInvalidInput)
	}
	if room.BreakoutSeats < 0 {
		return nil, false, fmt.Errorf("%w: breakoutSeats must be 0 or more", ErrInvalidInput)
	}

	// Комната без компьютеров, но с периферией — подозрительная конфигурация
	if room.HasSmartboard && room.Computers == 0 {
		s.logger.Warn("AddRoom: room %d has a smartboard but no computers", room.Number)
	}
	if room.HasPrinter && room.Computers == 0 {
		s.logger.Warn("AddRoom: room %d has a printer but no computers", room.Number)
	}

	added, created, err := s.roomRepo.Add(ctx, room)
	if err != nil {
		s.logger.Error("AddRoom: repository error for room %d: %v", room.Number, err)
		return nil, false, fmt.Errorf("%w: AddRoom - repository error: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("AddRoom: room %d added (computers=%d, breakoutSeats=%d, printer=%t, smartboard=%t)",
			added.Number, added.Computers, added.BreakoutSeats, added.HasPrinter, added.HasSmartboard)
	} else {
		s.logger.Warn("AddRoom: room %d already exists, returning existing record", added.Number)
	}

	return added, created, nil
}

// GetByNumber возвращает комнату по номеру
func (s *Service) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByNumber: repository error for room %d: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}
	return room, nil
}

// List возвращает копию всего инвентаря
func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return rooms, nil
}

// isNotFound распознает "не найдено" обоих драйверов хранилища
func isNotFound(err error) bool {
	return errors.Is(err, memoryRepo.ErrRoomNotFound) || errors.Is(err, pgRepo.ErrRoomNotFound)
}
