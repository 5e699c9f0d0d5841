package domain

// User — пользователь системы, только идентификатор.
type User struct {
	Base
}

// NewUser создаёт пользователя с новым идентификатором.
func NewUser() *User {
	return &User{Base: NewBase(NewIdentity())}
}
