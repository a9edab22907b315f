package simpletxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует выполнение операций глобальным мьютексом
// Используется с файловым хранилищем, где настоящих транзакций нет:
// последовательность "прочитать-отфильтровать-записать" должна выполняться
// монопольно, иначе две параллельные заявки могут занять одну комнату
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под глобальным мьютексом
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под глобальным мьютексом
// Для in-memory хранилища это и есть сериализуемость
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под глобальным мьютексом
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
