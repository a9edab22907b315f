package clients

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

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository PostgreSQL директория клиентов
// Идентификаторы назначает BIGSERIAL; частичные уникальные индексы по
// telephone и email дублируют дедупликацию на уровне схемы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет клиента в директорию
// Совпадение непустого телефона или email с существующим клиентом не
// создает новую запись: возвращается существующий клиент с created=false
func (r *Repository) Add(ctx context.Context, client domain.Client) (*domain.Client, bool, error) {
	if !client.HasContactChannel() {
		return nil, false, ErrNoContactChannel
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	if existing, err := r.findByContact(ctx, client.Telephone, client.Email); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrClientNotFound) {
		return nil, false, err
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns("first_name", "last_name", "telephone", "email").
		Values(client.FirstName, client.LastName, client.Telephone, client.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&client.ID); err != nil {
		return nil, false, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return &client, true, nil
}

// GetByID возвращает клиента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// FindByTelephone возвращает клиента с указанным телефоном
func (r *Repository) FindByTelephone(ctx context.Context, telephone string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"telephone": telephone})
}

// FindByEmail возвращает клиента с указанным email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// List возвращает всю директорию, упорядоченную по идентификатору
func (r *Repository) List(ctx context.Context) ([]domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClients().
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return out, nil
}

// findByContact ищет клиента по любому из непустых каналов связи
func (r *Repository) findByContact(ctx context.Context, telephone, email *string) (*domain.Client, error) {
	or := squirrel.Or{}
	if telephone != nil && *telephone != "" {
		or = append(or, squirrel.Eq{"telephone": *telephone})
	}
	if email != nil && *email != "" {
		or = append(or, squirrel.Eq{"email": *email})
	}
	if len(or) == 0 {
		return nil, ErrClientNotFound
	}

	return r.getOne(ctx, or)
}

func (r *Repository) getOne(ctx context.Context, where interface{}) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClients().
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Telephone,
		&client.Email,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan client: %v", ErrScanRow, err)
	}

	return &client, nil
}

func scanClient(rows *sql.Rows) (*domain.Client, error) {
	var client domain.Client
	if err := rows.Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Telephone,
		&client.Email,
	); err != nil {
		return nil, fmt.Errorf("%w: scan client: %v", ErrScanRow, err)
	}
	return &client, nil
}

func selectClients() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"telephone",
		"email",
	).From("clients")
}
