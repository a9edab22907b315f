package rooms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Repository PostgreSQL хранилище инвентаря комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет комнату в инвентарь
// Существующий номер комнаты не перезаписывается: возвращается текущая
// запись с created=false
func (r *Repository) Add(ctx context.Context, room domain.Room) (*domain.Room, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.GetByNumber(ctx, room.Number)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrRoomNotFound) {
		return nil, false, err
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("number", "computers", "breakout_seats", "has_printer", "has_smartboard").
		Values(room.Number, room.Computers, room.BreakoutSeats, room.HasPrinter, room.HasSmartboard).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, false, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return &room, true, nil
}

// GetByNumber возвращает комнату по номеру
func (r *Repository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRooms().
		Where(squirrel.Eq{"number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.Number,
		&room.Computers,
		&room.BreakoutSeats,
		&room.HasPrinter,
		&room.HasSmartboard,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// List возвращает весь инвентарь, упорядоченный по номеру комнаты
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRooms().
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.Number,
			&room.Computers,
			&room.BreakoutSeats,
			&room.HasPrinter,
			&room.HasSmartboard,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return out, nil
}

func selectRooms() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"number",
		"computers",
		"breakout_seats",
		"has_printer",
		"has_smartboard",
	).From("rooms")
}
