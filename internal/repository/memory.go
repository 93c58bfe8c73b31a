package repository

import (
	"context"
	"sync"
)

// MemoryRepository хранит записи в памяти процесса. Используется в тестах
// и как хранилище по умолчанию при запуске без внешних зависимостей.
type MemoryRepository struct {
	mu       sync.RWMutex
	records  map[string][]byte
	watchers map[string][]chan struct{}
}

// NewMemoryRepository создаёт пустое хранилище в памяти.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:  make(map[string][]byte),
		watchers: make(map[string][]chan struct{}),
	}
}

// Get возвращает значение ключа или ErrKeyNotFound.
func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.records[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Set сохраняет значение ключа и уведомляет подписчиков.
func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	cp := make([]byte, len(value))
	copy(cp, value)
	r.records[key] = cp
	r.mu.Unlock()

	r.notify(key)
	return nil
}

// SetIfAbsent сохраняет значение, только если ключ ещё не существует.
// Возвращает true, если запись была создана.
func (r *MemoryRepository) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	r.mu.Lock()
	if _, ok := r.records[key]; ok {
		r.mu.Unlock()
		return false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	r.records[key] = cp
	r.mu.Unlock()

	r.notify(key)
	return true, nil
}

// Delete удаляет ключ. Удаление отсутствующего ключа не является ошибкой.
func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	_, existed := r.records[key]
	delete(r.records, key)
	r.mu.Unlock()

	if existed {
		r.notify(key)
	}
	return nil
}

// Watch возвращает канал, получающий сигнал при каждом изменении ключа.
// Подписка снимается при отмене контекста.
func (r *MemoryRepository) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	r.mu.Lock()
	r.watchers[key] = append(r.watchers[key], ch)
	r.mu.Unlock()

	go func() {
		<-ctx.Done()

		r.mu.Lock()
		defer r.mu.Unlock()

		chans := r.watchers[key]
		for i, c := range chans {
			if c == ch {
				r.watchers[key] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
	}()

	return ch, nil
}

func (r *MemoryRepository) notify(key string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.watchers[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close освобождает ресурсы хранилища.
func (r *MemoryRepository) Close() error {
	return nil
}
