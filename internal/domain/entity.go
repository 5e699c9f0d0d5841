package domain

// Entity — доменный объект, равенство которого определяется только его Identity.
type Entity interface {
	ID() Identity
}

// Base хранит идентификатор сущности, зафиксированный при создании.
// Встраивается во все агрегаты.
type Base struct {
	id Identity
}

// NewBase создаёт основу сущности с заданным идентификатором.
func NewBase(id Identity) Base {
	return Base{id: id}
}

// ID возвращает идентификатор сущности.
func (b Base) ID() Identity {
	return b.id
}

// Equal сравнивает сущности по идентификатору, остальные поля не учитываются.
// Копия сущности равна оригиналу.
func (b Base) Equal(other Entity) bool {
	if other == nil {
		return false
	}
	return b.id == other.ID()
}

// SameEntity сообщает, что a и b описывают одну и ту же логическую запись.
func SameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
