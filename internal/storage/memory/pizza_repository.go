package memory

import (
	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
)

const pizzasCollection = "pizzas"

// pizzaRepositoryInMemory хранит глубокие копии пицц вместе с их ингредиентами.
type pizzaRepositoryInMemory struct {
	data *repository.Set[*domain.Pizza]
}

// NewPizzaRepository возвращает in-memory репозиторий пицц.
func NewPizzaRepository(opts ...repository.Option) repository.Repository[*domain.Pizza] {
	return &pizzaRepositoryInMemory{
		data: repository.NewSet[*domain.Pizza](pizzasCollection, opts...),
	}
}

func (r *pizzaRepositoryInMemory) Add(pizza *domain.Pizza) {
	r.data.Add(pizza)
}

func (r *pizzaRepositoryInMemory) Get(id domain.Identity) (*domain.Pizza, error) {
	return r.data.Get(id)
}

func (r *pizzaRepositoryInMemory) Remove(pizza *domain.Pizza) {
	r.data.Remove(pizza)
}

func (r *pizzaRepositoryInMemory) Update(pizza *domain.Pizza) {
	r.data.Update(pizza)
}

func (r *pizzaRepositoryInMemory) Len() int {
	return r.data.Len()
}

var _ repository.Repository[*domain.Pizza] = (*pizzaRepositoryInMemory)(nil)
