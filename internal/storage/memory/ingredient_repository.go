package memory

import (
	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
)

const ingredientsCollection = "ingredients"

// ingredientRepositoryInMemory хранит снимки ингредиентов: наружу отдаются только копии.
type ingredientRepositoryInMemory struct {
	data *repository.Set[*domain.Ingredient]
}

// NewIngredientRepository возвращает in-memory репозиторий ингредиентов.
func NewIngredientRepository(opts ...repository.Option) repository.Repository[*domain.Ingredient] {
	return &ingredientRepositoryInMemory{
		data: repository.NewSet[*domain.Ingredient](ingredientsCollection, opts...),
	}
}

func (r *ingredientRepositoryInMemory) Add(ingredient *domain.Ingredient) {
	r.data.Add(ingredient)
}

func (r *ingredientRepositoryInMemory) Get(id domain.Identity) (*domain.Ingredient, error) {
	return r.data.Get(id)
}

func (r *ingredientRepositoryInMemory) Remove(ingredient *domain.Ingredient) {
	r.data.Remove(ingredient)
}

func (r *ingredientRepositoryInMemory) Update(ingredient *domain.Ingredient) {
	r.data.Update(ingredient)
}

func (r *ingredientRepositoryInMemory) Len() int {
	return r.data.Len()
}

var _ repository.Repository[*domain.Ingredient] = (*ingredientRepositoryInMemory)(nil)
