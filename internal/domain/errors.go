package domain

import "errors"

var (
	// ErrNotFound возвращается репозиторием, если сущность с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("entity not found")
	// Ошибка разбора идентификатора на входе сервиса.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrEventPublish возвращается, если доменное событие не удалось опубликовать.
	ErrEventPublish = errors.New("event publish failed")
)

// IsNotFound проверяет, что ошибка означает отсутствие сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
