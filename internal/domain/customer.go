package domain

// Customer — клиент пиццерии. Кроме идентификатора состояния не имеет.
type Customer struct {
	Base
}

// NewCustomer создаёт клиента с новым идентификатором.
func NewCustomer() *Customer {
	return &Customer{Base: NewBase(NewIdentity())}
}
