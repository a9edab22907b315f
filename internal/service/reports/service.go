package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/roomfinder"
)

// Report результат генерации отчета по бронированиям клиента
type Report struct {
	Path     string
	Text     string
	Bookings []domain.Booking
}

// Service сервис текстовых отчетов по журналу бронирований
// Отчет пишется в файл с именем из текущих даты и времени в каталоге dir
type Service struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	dir         string
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookingRepo BookingRepository, clientRepo ClientRepository, dir string, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		dir:         dir,
		logger:      logger,
	}
}

// GenerateClientReport строит отчет по всем бронированиям клиента
// и сохраняет его в текстовый файл
func (s *Service) GenerateClientReport(ctx context.Context, clientID int64) (*Report, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		s.logger.Warn("GenerateClientReport: client id=%d not found: %v", clientID, err)
		return nil, ErrClientNotFound
	}

	ledger, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("GenerateClientReport: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	finder := roomfinder.NewBookingFinder(ledger)
	finder.FilterByClient(clientID)
	bookings := finder.Bookings()

	text := renderReport(client, bookings)

	path, err := s.writeReportFile(text)
	if err != nil {
		s.logger.Error("GenerateClientReport: %v", err)
		return nil, err
	}

	s.logger.Info("GenerateClientReport: report for client id=%d with %d bookings written to %s",
		clientID, len(bookings), path)

	return &Report{
		Path:     path,
		Text:     text,
		Bookings: bookings,
	}, nil
}

// renderReport форматирует бронирования в текстовые блоки
func renderReport(client *domain.Client, bookings []domain.Booking) string {
	var sb strings.Builder

	for _, b := range bookings {
		sb.WriteString("Booking ID: " + b.ID + "\n")
		sb.WriteString("Client: " + client.FullName() + "\n")
		sb.WriteString(fmt.Sprintf("Room: %d\n", b.RoomNumber))
		sb.WriteString("Date: " + b.Date.Format(domain.DateFormat) + "\n")
		sb.WriteString("Start Time: " + b.StartTime.String() + "\n")

		unit := "hours"
		if b.DurationHours == 1 {
			unit = "hour"
		}
		sb.WriteString(fmt.Sprintf("Length: %d %s\n", b.DurationHours, unit))
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeReportFile пишет отчет в файл, названный текущими датой и временем
// Двоеточия во времени заменяются точками ради переносимости имени файла
func (s *Service) writeReportFile(text string) (string, error) {
	now := time.Now()
	name := now.Format("2006-01-02") + ", " + strings.ReplaceAll(now.Format("15:04:05"), ":", ".") + ".txt"
	path := filepath.Join(s.dir, name)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteReport, s.dir, err)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteReport, path, err)
	}

	return path, nil
}
