package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/roomfinder"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
)

// UseCase use case создания бронирования: подбирает наиболее подходящую
// комнату и фиксирует бронирование в журнале
type UseCase struct {
	roomRepo    RoomRepository
	clientRepo  ClientRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     *metrics.Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	clientRepo ClientRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     m,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Подбор комнаты и вставка выполняются в сериализуемой транзакции, чтобы две
// параллельные заявки с пересекающимися окнами не получили одну комнату
//
// Неудачная попытка не оставляет следов: журнал и счетчик ID не меняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, hours=%d, computers=%d, breakoutSeats=%d, printer=%t, smartboard=%t",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Hours,
		req.Profile.Computers, req.Profile.BreakoutSeats, req.Profile.HasPrinter, req.Profile.HasSmartboard)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем клиента: существующий по ID или новый с дедупликацией
	client, err := uc.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		created *domain.Booking
		room    *domain.Room
	)

	// 3. Подбор комнаты и вставка в журнал — монопольно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Снимаем снапшоты инвентаря и журнала
		rooms, err := uc.roomRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list rooms: %v", err)
			return fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
		}

		ledger, err := uc.bookingRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 3.2. Прогоняем конвейер фильтров и выбираем best fit
		finder := roomfinder.New(rooms, ledger)
		best, err := finder.BestFit(req.Profile, req.Date, req.StartTime, req.Hours)
		if err != nil {
			uc.logger.Error("CreateBooking: filter pipeline failed: %v", err)
			return fmt.Errorf("%w: filter pipeline failed: %v", ErrInternal, err)
		}

		if best == nil {
			uc.logger.Warn("CreateBooking: no room satisfies the request")
			return ErrNoRoomAvailable
		}

		// 3.3. Фиксируем бронирование; ID назначается в момент вставки
		booking := domain.Booking{
			RoomNumber:    best.Number,
			ClientID:      client.ID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.Hours,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		room = best

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNoRoomAvailable) {
			uc.metrics.ObserveAllocation(metrics.AllocationOutcomeNoRoom)
		} else {
			uc.metrics.ObserveAllocation(metrics.AllocationOutcomeError)
		}
		return nil, err
	}

	uc.metrics.ObserveAllocation(metrics.AllocationOutcomeAllocated)
	uc.logger.Info("CreateBooking: booking %s created, room=%d, client=%d",
		created.ID, created.RoomNumber, created.ClientID)

	return &Response{
		BookingID:     created.ID,
		RoomNumber:    created.RoomNumber,
		Room:          *room,
		Client:        *client,
		Date:          created.Date,
		StartTime:     created.StartTime,
		DurationHours: created.DurationHours,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// resolveClient возвращает клиента для бронирования
// Добавление с занятым каналом связи разрешается в существующего клиента
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*domain.Client, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			uc.logger.Warn("CreateBooking: client id=%d not found", *req.ClientID)
			return nil, ErrClientNotFound
		}
		return client, nil
	}

	client, createdNew, err := uc.clientRepo.Add(ctx, domain.Client{
		FirstName: req.Client.FirstName,
		LastName:  req.Client.LastName,
		Telephone: req.Client.Telephone,
		Email:     req.Client.Email,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to add client: %v", err)
		return nil, fmt.Errorf("%w: failed to add client: %v", ErrInternal, err)
	}

	if !createdNew {
		uc.logger.Info("CreateBooking: contact channel already known, resolved to client id=%d", client.ID)
	}

	return client, nil
}
