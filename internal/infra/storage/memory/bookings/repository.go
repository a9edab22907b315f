package bookings

import (
	"context"
	"sort"
	"sync"
	"time"

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

// Repository in-memory журнал бронирований с файловыми снапшотами
//
// ID бронирования строится из номера комнаты и глобального счетчика,
// общего для всех комнат. Счетчик увеличивается только при успешном
// создании: неудачные попытки подбора комнаты не оставляют пропусков
type Repository struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking
	seq      int64
	store    *snapshot.Store
	log      Logger
	metrics  *metrics.Metrics
}

// NewRepository создает репозиторий и загружает снапшот журнала
func NewRepository(store *snapshot.Store, log Logger, m *metrics.Metrics) *Repository {
	r := &Repository{
		bookings: make(map[string]domain.Booking),
		store:    store,
		log:      log,
		metrics:  m,
	}

	entities := make(map[string]domain.Booking)
	count, found, err := store.Load(domain.StoreBookings, &entities)
	if err != nil {
		r.log.Error("bookings: failed to load snapshot, starting empty: %v", err)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreBookings)
		return r
	}
	if !found {
		r.log.Info("bookings: no snapshot found, starting empty")
		return r
	}

	if count < int64(len(entities)) {
		r.log.Error("bookings: snapshot counter %d is below entity count %d: %v", count, len(entities), ErrCorruptSnapshot)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreBookings)
		return r
	}

	for id, booking := range entities {
		if id != booking.ID {
			r.log.Error("bookings: snapshot entity key %q does not match booking id %q, skipping", id, booking.ID)
			continue
		}
		r.bookings[id] = booking
	}
	r.seq = count

	r.log.Info("bookings: loaded %d bookings from snapshot (seq counter at %d)", len(r.bookings), r.seq)
	return r
}

// Create вставляет бронирование в журнал, назначая ему ID
// Переданный RoomNumber уже выбран аллокатором; значение счетчика
// фиксируется в момент вставки и не резервируется заранее
func (r *Repository) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	booking.ID = domain.FormatBookingID(booking.RoomNumber, r.seq)
	booking.CreatedAt = time.Now()

	r.bookings[booking.ID] = booking
	r.persist()

	return &booking, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return &booking, nil
}

// Delete удаляет бронирование из журнала
// Отсутствующий ID возвращает ErrBookingNotFound; журнал при этом не меняется,
// поэтому повторная отмена безопасна
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}

	delete(r.bookings, id)
	r.persist()

	return nil
}

// List возвращает копию журнала, упорядоченную по ID
func (r *Repository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		out = append(out, booking)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// persist сохраняет снапшот; вызывается под мьютексом
func (r *Repository) persist() {
	entities := make(map[string]domain.Booking, len(r.bookings))
	for id, booking := range r.bookings {
		entities[id] = booking
	}

	if err := r.store.Save(domain.StoreBookings, r.seq, entities); err != nil {
		r.log.Error("bookings: failed to save snapshot, in-memory state remains authoritative: %v", err)
		r.metrics.ObserveSnapshotSaveFailure(domain.StoreBookings)
	}
}
