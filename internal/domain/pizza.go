package domain

import "sort"

// ProfitMultiplier — наценка, применяемая к сумме себестоимости ингредиентов.
const ProfitMultiplier = 1.2

// Pizza агрегирует описание пиццы и набор снимков ингредиентов.
// Ингредиенты внутри пиццы никогда не разделяются с вызывающим кодом:
// они копируются на входе и на выходе.
type Pizza struct {
	Base
	name        string
	description string
	url         string
	ingredients map[Identity]*Ingredient
}

// NewPizza создаёт пиццу с новым идентификатором. Ингредиенты копируются,
// повторяющиеся идентификаторы схлопываются.
func NewPizza(name, description, url string, ingredients []*Ingredient) *Pizza {
	return newPizza(NewIdentity(), name, description, url, ingredients)
}

func newPizza(id Identity, name, description, url string, ingredients []*Ingredient) *Pizza {
	return &Pizza{
		Base:        NewBase(id),
		name:        name,
		description: description,
		url:         url,
		ingredients: cloneIngredients(ingredients),
	}
}

// Name возвращает название пиццы.
func (p *Pizza) Name() string {
	return p.name
}

// Description возвращает описание пиццы.
func (p *Pizza) Description() string {
	return p.description
}

// URL возвращает ссылку на изображение пиццы.
func (p *Pizza) URL() string {
	return p.url
}

// Ingredients возвращает свежие копии ингредиентов, отсортированные по названию.
func (p *Pizza) Ingredients() []*Ingredient {
	sorted := p.sortedIngredients()
	out := make([]*Ingredient, 0, len(sorted))
	for _, ingredient := range sorted {
		out = append(out, ingredient.Clone())
	}
	return out
}

// Price пересчитывается при каждом вызове: сумма стоимостей, умноженная на ProfitMultiplier.
func (p *Pizza) Price() float64 {
	var sum float64
	for _, ingredient := range p.sortedIngredients() {
		sum += ingredient.cost
	}
	return sum * ProfitMultiplier
}

// AddIngredient добавляет копию ингредиента. Уже присутствующий идентификатор игнорируется.
func (p *Pizza) AddIngredient(ingredient *Ingredient) {
	if ingredient == nil {
		return
	}
	if _, exists := p.ingredients[ingredient.ID()]; exists {
		return
	}
	p.ingredients[ingredient.ID()] = ingredient.Clone()
}

// RemoveIngredient удаляет ингредиент по идентификатору; отсутствие не считается ошибкой.
func (p *Pizza) RemoveIngredient(ingredient *Ingredient) {
	if ingredient == nil {
		return
	}
	delete(p.ingredients, ingredient.ID())
}

// Update заменяет название, описание и ссылку одновременно.
func (p *Pizza) Update(name, description, url string) {
	p.name = name
	p.description = description
	p.url = url
}

// Clone возвращает полную копию пиццы с тем же идентификатором и заново скопированными ингредиентами.
func (p *Pizza) Clone() *Pizza {
	return newPizza(p.ID(), p.name, p.description, p.url, p.sortedIngredients())
}

// sortedIngredients возвращает внутренние экземпляры в стабильном порядке.
// Наружу их отдавать нельзя.
func (p *Pizza) sortedIngredients() []*Ingredient {
	out := make([]*Ingredient, 0, len(p.ingredients))
	for _, ingredient := range p.ingredients {
		out = append(out, ingredient)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].name != out[j].name {
			return out[i].name < out[j].name
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

func cloneIngredients(ingredients []*Ingredient) map[Identity]*Ingredient {
	out := make(map[Identity]*Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient == nil {
			continue
		}
		if _, exists := out[ingredient.ID()]; exists {
			continue
		}
		out[ingredient.ID()] = ingredient.Clone()
	}
	return out
}
