package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	memoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/bookings"
	pgRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/bookings"
)

// Service сервис журнала бронирований: чтение и отмена
// Создание бронирований идет через usecase create_booking
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("GetByID: booking %s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// Cancel удаляет бронирование из журнала
// Неизвестный ID возвращает ErrBookingNotFound; журнал при этом не меняется,
// поэтому отмена уже отмененного бронирования ничего не портит
func (s *Service) Cancel(ctx context.Context, id string) error {
	err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("Cancel: booking %s not found, nothing to cancel", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking %s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %s cancelled", id)
	return nil
}

// List возвращает копию всего журнала
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// isNotFound распознает "не найдено" обоих драйверов хранилища
func isNotFound(err error) bool {
	return errors.Is(err, memoryRepo.ErrBookingNotFound) || errors.Is(err, pgRepo.ErrBookingNotFound)
}
