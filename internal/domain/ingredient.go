package domain

// Ingredient — ингредиент с названием и себестоимостью.
type Ingredient struct {
	Base
	name string
	cost float64
}

// NewIngredient создаёт ингредиент с новым идентификатором.
func NewIngredient(name string, cost float64) *Ingredient {
	return &Ingredient{
		Base: NewBase(NewIdentity()),
		name: name,
		cost: cost,
	}
}

// Name возвращает название ингредиента.
func (i *Ingredient) Name() string {
	return i.name
}

// Cost возвращает себестоимость ингредиента.
func (i *Ingredient) Cost() float64 {
	return i.cost
}

// Update заменяет название и стоимость одновременно; частичное обновление не поддерживается.
func (i *Ingredient) Update(name string, cost float64) {
	i.name = name
	i.cost = cost
}

// Clone возвращает снимок ингредиента с тем же идентификатором.
// Клон равен оригиналу, но не разделяет с ним состояние.
func (i *Ingredient) Clone() *Ingredient {
	return &Ingredient{
		Base: i.Base,
		name: i.name,
		cost: i.cost,
	}
}
