package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository PostgreSQL журнал бронирований
//
// Глобальный счетчик для ID вычисляется как MAX(seq)+1 внутри транзакции
// создания, а не через sequence: неудачные попытки подбора комнаты не
// оставляют пропусков в нумерации. Создание выполняется в сериализуемой
// транзакции (см. usecase), уникальный индекс по seq страхует от гонок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронирование в журнал, назначая ему ID
func (r *Repository) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var seq int64
	err := executor.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM bookings").Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - next seq: %v", ErrExecQuery, err)
	}

	booking.ID = domain.FormatBookingID(booking.RoomNumber, seq)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "seq", "room_number", "client_id", "booking_date", "start_time", "duration_hours").
		Values(booking.ID, seq, booking.RoomNumber, booking.ClientID, booking.Date, booking.StartTime.String(), booking.DurationHours).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// Delete удаляет бронирование из журнала
// Отсутствующий ID возвращает ErrBookingNotFound
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// List возвращает весь журнал, упорядоченный по порядку создания
func (r *Repository) List(ctx context.Context) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return out, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		startTime string
		createdAt sql.NullTime
		date      time.Time
	)

	err := row.Scan(
		&booking.ID,
		&booking.RoomNumber,
		&booking.ClientID,
		&date,
		&startTime,
		&booking.DurationHours,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	booking.Date = date
	booking.StartTime = types.TimeString(startTime)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"room_number",
		"client_id",
		"booking_date",
		"start_time",
		"duration_hours",
		"created_at",
	).From("bookings")
}
