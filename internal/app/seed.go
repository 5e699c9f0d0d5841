package app

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/pizza"
)

type demoIngredient struct {
	name string
	cost float64
}

type demoPizza struct {
	name        string
	description string
	url         string
	ingredients []string
}

var demoIngredients = []demoIngredient{
	{name: "dough", cost: 1.5},
	{name: "tomato sauce", cost: 0.8},
	{name: "mozzarella", cost: 2.2},
	{name: "basil", cost: 0.3},
	{name: "pepperoni", cost: 2.5},
	{name: "mushrooms", cost: 1.1},
}

var demoPizzas = []demoPizza{
	{
		name:        "Margherita",
		description: "Tomato, mozzarella and fresh basil",
		url:         "/pizzas/margherita",
		ingredients: []string{"dough", "tomato sauce", "mozzarella", "basil"},
	},
	{
		name:        "Pepperoni",
		description: "Spicy pepperoni with mozzarella",
		url:         "/pizzas/pepperoni",
		ingredients: []string{"dough", "tomato sauce", "mozzarella", "pepperoni"},
	},
	{
		name:        "Funghi",
		description: "Mushrooms and mozzarella",
		url:         "/pizzas/funghi",
		ingredients: []string{"dough", "tomato sauce", "mozzarella", "mushrooms"},
	},
}

// seedCatalog наполняет каталог через обработчики, поэтому события и метрики
// видны так же, как при обычной работе.
func seedCatalog(ctx context.Context, h Handlers) ([]domain.Identity, error) {
	ingredientIDs := make(map[string]domain.Identity, len(demoIngredients))
	for _, ing := range demoIngredients {
		id, err := h.CreateIngredient.Handle(ctx, ing.name, ing.cost)
		if err != nil {
			return nil, fmt.Errorf("seed ingredient %q: %w", ing.name, err)
		}
		ingredientIDs[ing.name] = id
	}

	pizzaIDs := make([]domain.Identity, 0, len(demoPizzas))
	for _, p := range demoPizzas {
		cmd := pizza.CreateCommand{
			Name:        p.name,
			Description: p.description,
			URL:         p.url,
		}
		for _, name := range p.ingredients {
			cmd.IngredientIDs = append(cmd.IngredientIDs, ingredientIDs[name])
		}
		id, err := h.CreatePizza.Handle(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("seed pizza %q: %w", p.name, err)
		}
		pizzaIDs = append(pizzaIDs, id)
	}

	if _, err := h.CreateCustomer.Handle(ctx); err != nil {
		return nil, fmt.Errorf("seed customer: %w", err)
	}
	return pizzaIDs, nil
}
