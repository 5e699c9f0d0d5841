package domain_test

import (
	"fmt"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

func wrapNotFound() error {
	return fmt.Errorf("pizzas %s: %w", domain.NewIdentity(), domain.ErrNotFound)
}

// helper для сборки набора ингредиентов с заданными стоимостями.
func makeIngredients(costs ...float64) []*domain.Ingredient {
	out := make([]*domain.Ingredient, 0, len(costs))
	for i, cost := range costs {
		out = append(out, domain.NewIngredient(fmt.Sprintf("ingredient-%d", i), cost))
	}
	return out
}
