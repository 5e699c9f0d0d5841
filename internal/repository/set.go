package repository

import (
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// Set — коллекция с семантикой множества: членство определяется идентификатором сущности.
// Если T реализует Cloner[T], сущности копируются при входе (Add, Update) и выходе (Get),
// иначе хранятся и отдаются исходные ссылки.
type Set[T domain.Entity] struct {
	name     string
	observer Observer

	mu    sync.RWMutex
	items map[domain.Identity]T
}

// NewSet создаёт пустую коллекцию. name используется в сообщениях об ошибках и метриках.
func NewSet[T domain.Entity](name string, opts ...Option) *Set[T] {
	cfg := options{observer: noopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.observer == nil {
		cfg.observer = noopObserver{}
	}

	return &Set[T]{
		name:     name,
		observer: cfg.observer,
		items:    make(map[domain.Identity]T),
	}
}

// Name возвращает имя коллекции.
func (s *Set[T]) Name() string {
	return s.name
}

// Add вставляет сущность, если её идентификатора ещё нет в коллекции.
func (s *Set[T]) Add(entity T) {
	s.mu.Lock()
	s.insert(entity)
	s.mu.Unlock()

	s.observer.ObserveOperation(s.name, OperationAdd, nil)
}

// Get возвращает сущность с указанным идентификатором.
func (s *Set[T]) Get(id domain.Identity) (T, error) {
	s.mu.RLock()
	entity, ok := s.items[id]
	s.mu.RUnlock()

	if !ok {
		var zero T
		err := fmt.Errorf("%s %s: %w", s.name, id, domain.ErrNotFound)
		s.observer.ObserveOperation(s.name, OperationGet, err)
		return zero, err
	}

	s.observer.ObserveOperation(s.name, OperationGet, nil)
	return snapshot(entity), nil
}

// Remove удаляет запись с идентификатором entity. Отсутствие записи не считается ошибкой.
func (s *Set[T]) Remove(entity T) {
	s.mu.Lock()
	delete(s.items, entity.ID())
	s.mu.Unlock()

	s.observer.ObserveOperation(s.name, OperationRemove, nil)
}

// Update заменяет запись по идентификатору (remove+add под одной блокировкой).
func (s *Set[T]) Update(entity T) {
	s.mu.Lock()
	delete(s.items, entity.ID())
	s.insert(entity)
	s.mu.Unlock()

	s.observer.ObserveOperation(s.name, OperationUpdate, nil)
}

// Contains сообщает, есть ли в коллекции запись с указанным идентификатором.
func (s *Set[T]) Contains(id domain.Identity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

// Len возвращает количество записей.
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// insert вызывается под блокировкой записи.
func (s *Set[T]) insert(entity T) {
	id := entity.ID()
	if _, exists := s.items[id]; exists {
		return
	}
	s.items[id] = snapshot(entity)
}

// snapshot копирует сущность, если её тип поддерживает копирование.
func snapshot[T domain.Entity](entity T) T {
	if cloner, ok := any(entity).(Cloner[T]); ok {
		return cloner.Clone()
	}
	return entity
}
