package pizza

import "github.com/vladislavdragonenkov/pizzeria/internal/domain"

// IngredientView — ингредиент в составе пиццы.
type IngredientView struct {
	ID   domain.Identity `json:"id"`
	Name string          `json:"name"`
	Cost float64         `json:"cost"`
}

// View — read-модель пиццы с рассчитанной ценой.
type View struct {
	ID          domain.Identity  `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Ingredients []IngredientView `json:"ingredients"`
	Price       float64          `json:"price"`
}

func newView(p *domain.Pizza) View {
	ingredients := p.Ingredients()
	views := make([]IngredientView, 0, len(ingredients))
	for _, ingredient := range ingredients {
		views = append(views, IngredientView{
			ID:   ingredient.ID(),
			Name: ingredient.Name(),
			Cost: ingredient.Cost(),
		})
	}
	return View{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		URL:         p.URL(),
		Ingredients: views,
		Price:       p.Price(),
	}
}
