package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	memoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/memory/clients"
	pgRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/pg/clients"
)

// Service сервис директории клиентов
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// AddClient добавляет клиента в директорию
// Занятый канал связи не создает дубликат: возвращается существующий
// клиент с created=false
func (s *Service) AddClient(ctx context.Context, client domain.Client) (*domain.Client, bool, error) {
	if client.FirstName == "" {
		return nil, false, fmt.Errorf("%w: first name cannot be blank", ErrInvalidInput)
	}
	if client.LastName == "" {
		return nil, false, fmt.Errorf("%w: last name cannot be blank", ErrInvalidInput)
	}
	if !client.HasContactChannel() {
		return nil, false, fmt.Errorf("%w: telephone or email is required", ErrInvalidInput)
	}

	added, created, err := s.clientRepo.Add(ctx, client)
	if err != nil {
		s.logger.Error("AddClient: repository error: %v", err)
		return nil, false, fmt.Errorf("%w: AddClient - repository error: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("AddClient: client id=%d added (%s)", added.ID, added.FullName())
	} else {
		s.logger.Warn("AddClient: contact channel already known, resolved to client id=%d", added.ID)
	}

	return added, created, nil
}

// GetByID возвращает клиента по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// FindByTelephone возвращает первого клиента с указанным телефоном
func (s *Service) FindByTelephone(ctx context.Context, telephone string) (*domain.Client, error) {
	client, err := s.clientRepo.FindByTelephone(ctx, telephone)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("FindByTelephone: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByTelephone - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// FindByEmail возвращает первого клиента с указанным email
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	client, err := s.clientRepo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("FindByEmail: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByEmail - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// List возвращает копию всей директории
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return clients, nil
}

// isNotFound распознает "не найдено" обоих драйверов хранилища
func isNotFound(err error) bool {
	return errors.Is(err, memoryRepo.ErrClientNotFound) || errors.Is(err, pgRepo.ErrClientNotFound)
}
