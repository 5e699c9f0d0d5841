// Package repository описывает узкие интерфейсы-возможности (Add/Get/Remove/Update)
// над коллекцией сущностей и их композицию в полный Repository.
//
// Хранилище объявляет набор разрешённых операций тем, какие интерфейсы оно реализует:
// держатель ссылки типа Getter не может ни добавить, ни удалить запись.
package repository

import "github.com/vladislavdragonenkov/pizzeria/internal/domain"

// Adder добавляет сущность в коллекцию.
type Adder[T domain.Entity] interface {
	// Add вставляет сущность. Повторное добавление того же идентификатора ничего не меняет.
	Add(entity T)
}

// Getter ищет сущность по идентификатору.
type Getter[T domain.Entity] interface {
	// Get возвращает сущность или ошибку, обёрнутую вокруг domain.ErrNotFound.
	Get(id domain.Identity) (T, error)
}

// Remover удаляет сущность по идентичности.
type Remover[T domain.Entity] interface {
	Getter[T]
	// Remove удаляет запись, равную entity; отсутствие записи не является ошибкой.
	Remove(entity T)
}

// Updater заменяет запись с тем же идентификатором.
type Updater[T domain.Entity] interface {
	Getter[T]
	// Update выполняет remove+add; если записи не было, она просто добавляется.
	Update(entity T)
}

// Repository объединяет все четыре возможности над одной коллекцией.
type Repository[T domain.Entity] interface {
	Adder[T]
	Remover[T]
	Updater[T]
}

// Cloner реализуют агрегаты с семантикой защитного копирования.
type Cloner[T any] interface {
	Clone() T
}
