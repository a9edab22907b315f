package rooms

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/snapshot"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Repository in-memory хранилище инвентаря комнат с файловыми снапшотами
//
// Состояние защищено мьютексом; все возвращаемые списки — независимые копии.
// Каждая успешная мутация синхронно сохраняет снапшот; ошибка сохранения
// логируется и учитывается в метриках, in-memory состояние при этом остается
// авторитетным до конца работы процесса
type Repository struct {
	mu      sync.Mutex
	rooms   map[int]domain.Room
	store   *snapshot.Store
	log     Logger
	metrics *metrics.Metrics
}

// NewRepository создает репозиторий и загружает снапшот инвентаря
// Отсутствующий или нечитаемый снапшот означает пустой инвентарь
func NewRepository(store *snapshot.Store, log Logger, m *metrics.Metrics) *Repository {
	r := &Repository{
		rooms:   make(map[int]domain.Room),
		store:   store,
		log:     log,
		metrics: m,
	}

	entities := make(map[string]domain.Room)
	count, found, err := store.Load(domain.StoreRooms, &entities)
	if err != nil {
		r.log.Error("rooms: failed to load snapshot, starting empty: %v", err)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreRooms)
		return r
	}
	if !found {
		r.log.Info("rooms: no snapshot found, starting empty")
		return r
	}

	// Номера комнат не переиспользуются, поэтому счетчик меньше числа
	// сущностей возможен только у поврежденного файла
	if count < int64(len(entities)) {
		r.log.Error("rooms: snapshot count %d is below entity count %d: %v", count, len(entities), ErrCorruptSnapshot)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreRooms)
		return r
	}

	for key, room := range entities {
		number, err := strconv.Atoi(key)
		if err != nil || number != room.Number {
			r.log.Error("rooms: snapshot entity key %q does not match room number %d, skipping", key, room.Number)
			continue
		}
		r.rooms[number] = room
	}

	r.log.Info("rooms: loaded %d rooms from snapshot", len(r.rooms))
	return r
}

// Add добавляет комнату в инвентарь
// Дубликат номера комнаты не создает новую запись, а возвращает существующую
// с created=false
func (r *Repository) Add(ctx context.Context, room domain.Room) (*domain.Room, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rooms[room.Number]; ok {
		return &existing, false, nil
	}

	r.rooms[room.Number] = room
	r.persist()

	return &room, true, nil
}

// GetByNumber возвращает комнату по номеру
func (r *Repository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[number]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return &room, nil
}

// List возвращает копию всего инвентаря, упорядоченную по номеру комнаты
// Стабильный порядок делает выбор best-fit воспроизводимым
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out, nil
}

// persist сохраняет снапшот; вызывается под мьютексом
func (r *Repository) persist() {
	entities := make(map[string]domain.Room, len(r.rooms))
	for number, room := range r.rooms {
		entities[strconv.Itoa(number)] = room
	}

	if err := r.store.Save(domain.StoreRooms, int64(len(r.rooms)), entities); err != nil {
		r.log.Error("rooms: failed to save snapshot, in-memory state remains authoritative: %v", err)
		r.metrics.ObserveSnapshotSaveFailure(domain.StoreRooms)
	}
}
