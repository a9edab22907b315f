package generate_report

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/reports"
)

// ReportService интерфейс сервиса отчетов
type ReportService interface {
	GenerateClientReport(ctx context.Context, clientID int64) (*reports.Report, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
