package clients

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

// Repository in-memory директория клиентов с файловыми снапшотами
//
// Идентификаторы назначаются последовательно и не переиспользуются:
// счетчик сохраняется в снапшоте отдельно от сущностей, поэтому после
// рестарта нумерация продолжается с прежнего места
type Repository struct {
	mu      sync.Mutex
	clients map[int64]domain.Client
	nextID  int64
	store   *snapshot.Store
	log     Logger
	metrics *metrics.Metrics
}

// NewRepository создает репозиторий и загружает снапшот директории
func NewRepository(store *snapshot.Store, log Logger, m *metrics.Metrics) *Repository {
	r := &Repository{
		clients: make(map[int64]domain.Client),
		store:   store,
		log:     log,
		metrics: m,
	}

	entities := make(map[string]domain.Client)
	count, found, err := store.Load(domain.StoreClients, &entities)
	if err != nil {
		r.log.Error("clients: failed to load snapshot, starting empty: %v", err)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreClients)
		return r
	}
	if !found {
		r.log.Info("clients: no snapshot found, starting empty")
		return r
	}

	if count < int64(len(entities)) {
		r.log.Error("clients: snapshot counter %d is below entity count %d: %v", count, len(entities), ErrCorruptSnapshot)
		r.metrics.ObserveSnapshotLoadFailure(domain.StoreClients)
		return r
	}

	for key, client := range entities {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id != client.ID {
			r.log.Error("clients: snapshot entity key %q does not match client id %d, skipping", key, client.ID)
			continue
		}
		r.clients[id] = client
	}
	r.nextID = count

	r.log.Info("clients: loaded %d clients from snapshot (id counter at %d)", len(r.clients), r.nextID)
	return r
}

// Add добавляет клиента в директорию
// Если телефон или email уже заняты другим клиентом, новая запись не
// создается: возвращается существующий клиент с created=false
func (r *Repository) Add(ctx context.Context, client domain.Client) (*domain.Client, bool, error) {
	if !client.HasContactChannel() {
		return nil, false, ErrNoContactChannel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.findByContact(client.Telephone, client.Email); existing != nil {
		return existing, false, nil
	}

	r.nextID++
	client.ID = r.nextID
	r.clients[client.ID] = client
	r.persist()

	return &client, true, nil
}

// GetByID возвращает клиента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}

	return &client, nil
}

// FindByTelephone возвращает первого клиента с указанным телефоном
// Дедупликация при добавлении исключает легитимные коллизии
func (r *Repository) FindByTelephone(ctx context.Context, telephone string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.sortedIDs() {
		c := r.clients[id]
		if c.Telephone != nil && *c.Telephone == telephone {
			return &c, nil
		}
	}

	return nil, ErrClientNotFound
}

// FindByEmail возвращает первого клиента с указанным email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.sortedIDs() {
		c := r.clients[id]
		if c.Email != nil && *c.Email == email {
			return &c, nil
		}
	}

	return nil, ErrClientNotFound
}

// List возвращает копию директории, упорядоченную по идентификатору
func (r *Repository) List(ctx context.Context) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Client, 0, len(r.clients))
	for _, id := range r.sortedIDs() {
		out = append(out, r.clients[id])
	}

	return out, nil
}

// findByContact ищет клиента по любому из непустых каналов связи
// Вызывается под мьютексом
func (r *Repository) findByContact(telephone, email *string) *domain.Client {
	for _, id := range r.sortedIDs() {
		c := r.clients[id]
		if telephone != nil && *telephone != "" && c.Telephone != nil && *c.Telephone == *telephone {
			return &c
		}
		if email != nil && *email != "" && c.Email != nil && *c.Email == *email {
			return &c
		}
	}
	return nil
}

// sortedIDs возвращает идентификаторы в возрастающем порядке
// Детерминированный порядок обхода дает стабильный результат "первый найденный"
func (r *Repository) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// persist сохраняет снапшот; вызывается под мьютексом
func (r *Repository) persist() {
	entities := make(map[string]domain.Client, len(r.clients))
	for id, client := range r.clients {
		entities[strconv.FormatInt(id, 10)] = client
	}

	if err := r.store.Save(domain.StoreClients, r.nextID, entities); err != nil {
		r.log.Error("clients: failed to save snapshot, in-memory state remains authoritative: %v", err)
		r.metrics.ObserveSnapshotSaveFailure(domain.StoreClients)
	}
}
