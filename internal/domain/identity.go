package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity — неизменяемый глобально уникальный идентификатор сущности.
// Два значения равны тогда и только тогда, когда совпадают их UUID.
type Identity struct {
	value uuid.UUID
}

// NewIdentity выпускает новый случайный идентификатор (UUIDv4).
func NewIdentity() Identity {
	return Identity{value: uuid.New()}
}

// ParseIdentity разбирает каноническое текстовое представление идентификатора.
func ParseIdentity(s string) (Identity, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return Identity{}, fmt.Errorf("%w %q: %v", ErrInvalidIdentity, s, err)
	}
	return Identity{value: v}, nil
}

// String возвращает каноническое представление UUID.
func (i Identity) String() string {
	return i.value.String()
}

// IsZero сообщает, что идентификатор не был выпущен.
func (i Identity) IsZero() bool {
	return i.value == uuid.Nil
}

// MarshalText позволяет сериализовать Identity в JSON как строку.
func (i Identity) MarshalText() ([]byte, error) {
	return i.value.MarshalText()
}

// UnmarshalText разбирает строковое представление Identity.
func (i *Identity) UnmarshalText(data []byte) error {
	parsed, err := ParseIdentity(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
