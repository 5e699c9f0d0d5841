package memory_test

import (
	"testing"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/storage/memory"
)

func newPizza() *domain.Pizza {
	return domain.NewPizza("margherita", "tomato and mozzarella", "https://img/margherita.png", []*domain.Ingredient{
		domain.NewIngredient("tomato", 1),
		domain.NewIngredient("mozzarella", 2),
	})
}

func mustSize(t *testing.T, repo any) int {
	t.Helper()
	size, ok := memory.Size(repo)
	if !ok {
		t.Fatalf("%T does not report its size", repo)
	}
	return size
}
