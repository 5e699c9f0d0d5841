// Package pizza содержит команды и запросы над пиццами каталога.
package pizza

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
	"github.com/vladislavdragonenkov/pizzeria/internal/service"
)

// CreateCommand описывает новую пиццу; ингредиенты задаются идентификаторами из каталога.
type CreateCommand struct {
	Name          string
	Description   string
	URL           string
	IngredientIDs []domain.Identity
}

// CreateHandler собирает пиццу из ингредиентов каталога.
type CreateHandler struct {
	pizzas      repository.Adder[*domain.Pizza]
	ingredients repository.Getter[*domain.Ingredient]
	events      domain.EventPublisher
	logger      *log.Entry
}

// NewCreateHandler создаёт обработчик создания пиццы.
func NewCreateHandler(
	pizzas repository.Adder[*domain.Pizza],
	ingredients repository.Getter[*domain.Ingredient],
	events domain.EventPublisher,
	logger *log.Entry,
) *CreateHandler {
	return &CreateHandler{
		pizzas:      pizzas,
		ingredients: ingredients,
		events:      events,
		logger:      service.Logger(logger, "pizza-create"),
	}
}

// Handle разрешает ингредиенты и сохраняет пиццу. Любой отсутствующий ингредиент
// прерывает создание с domain.ErrNotFound.
func (h *CreateHandler) Handle(ctx context.Context, cmd CreateCommand) (domain.Identity, error) {
	ingredients := make([]*domain.Ingredient, 0, len(cmd.IngredientIDs))
	for _, id := range cmd.IngredientIDs {
		ingredient, err := h.ingredients.Get(id)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("create pizza: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}

	pizza := domain.NewPizza(cmd.Name, cmd.Description, cmd.URL, ingredients)
	h.pizzas.Add(pizza)

	h.logger.WithFields(log.Fields{
		"pizza_id":    pizza.ID().String(),
		"name":        pizza.Name(),
		"ingredients": len(ingredients),
		"price":       pizza.Price(),
	}).Info("pizza created")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventPizzaCreated, pizza.ID(), map[string]any{
		"name":  pizza.Name(),
		"price": pizza.Price(),
	}))
	return pizza.ID(), nil
}

// UpdateHandler меняет название, описание и ссылку пиццы.
type UpdateHandler struct {
	pizzas repository.Updater[*domain.Pizza]
	events domain.EventPublisher
	logger *log.Entry
}

// NewUpdateHandler создаёт обработчик обновления пиццы.
func NewUpdateHandler(pizzas repository.Updater[*domain.Pizza], events domain.EventPublisher, logger *log.Entry) *UpdateHandler {
	return &UpdateHandler{
		pizzas: pizzas,
		events: events,
		logger: service.Logger(logger, "pizza-update"),
	}
}

// Handle обновляет описательные поля целиком.
func (h *UpdateHandler) Handle(ctx context.Context, id domain.Identity, name, description, url string) error {
	pizza, err := h.pizzas.Get(id)
	if err != nil {
		return fmt.Errorf("update pizza: %w", err)
	}
	pizza.Update(name, description, url)
	h.pizzas.Update(pizza)

	h.logger.WithField("pizza_id", id.String()).Info("pizza updated")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventPizzaUpdated, id, map[string]any{
		"name": name,
	}))
	return nil
}

// IngredientsHandler добавляет и убирает ингредиенты пиццы.
type IngredientsHandler struct {
	pizzas      repository.Updater[*domain.Pizza]
	ingredients repository.Getter[*domain.Ingredient]
	events      domain.EventPublisher
	logger      *log.Entry
}

// NewIngredientsHandler создаёт обработчик состава пиццы.
func NewIngredientsHandler(
	pizzas repository.Updater[*domain.Pizza],
	ingredients repository.Getter[*domain.Ingredient],
	events domain.EventPublisher,
	logger *log.Entry,
) *IngredientsHandler {
	return &IngredientsHandler{
		pizzas:      pizzas,
		ingredients: ingredients,
		events:      events,
		logger:      service.Logger(logger, "pizza-ingredients"),
	}
}

// Add кладёт в пиццу текущий снимок ингредиента из каталога.
func (h *IngredientsHandler) Add(ctx context.Context, pizzaID, ingredientID domain.Identity) error {
	pizza, err := h.pizzas.Get(pizzaID)
	if err != nil {
		return fmt.Errorf("add ingredient: %w", err)
	}
	ingredient, err := h.ingredients.Get(ingredientID)
	if err != nil {
		return fmt.Errorf("add ingredient: %w", err)
	}
	pizza.AddIngredient(ingredient)
	h.pizzas.Update(pizza)

	h.logger.WithFields(log.Fields{
		"pizza_id":      pizzaID.String(),
		"ingredient_id": ingredientID.String(),
		"price":         pizza.Price(),
	}).Info("ingredient added to pizza")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventPizzaIngredientAdded, pizzaID, map[string]any{
		"ingredient_id": ingredientID.String(),
		"price":         pizza.Price(),
	}))
	return nil
}

// Remove убирает ингредиент из пиццы. Ингредиент ищется в составе пиццы,
// поэтому его можно убрать даже после удаления из каталога. Если ингредиента нет, ничего не происходит.
func (h *IngredientsHandler) Remove(ctx context.Context, pizzaID, ingredientID domain.Identity) error {
	pizza, err := h.pizzas.Get(pizzaID)
	if err != nil {
		return fmt.Errorf("remove ingredient: %w", err)
	}

	var removed bool
	for _, ingredient := range pizza.Ingredients() {
		if ingredient.ID() == ingredientID {
			pizza.RemoveIngredient(ingredient)
			removed = true
			break
		}
	}
	if !removed {
		return nil
	}
	h.pizzas.Update(pizza)

	h.logger.WithFields(log.Fields{
		"pizza_id":      pizzaID.String(),
		"ingredient_id": ingredientID.String(),
		"price":         pizza.Price(),
	}).Info("ingredient removed from pizza")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventPizzaIngredientRemoved, pizzaID, map[string]any{
		"ingredient_id": ingredientID.String(),
		"price":         pizza.Price(),
	}))
	return nil
}

// DeleteHandler удаляет пиццу из каталога.
type DeleteHandler struct {
	pizzas repository.Remover[*domain.Pizza]
	events domain.EventPublisher
	logger *log.Entry
}

// NewDeleteHandler создаёт обработчик удаления пиццы.
func NewDeleteHandler(pizzas repository.Remover[*domain.Pizza], events domain.EventPublisher, logger *log.Entry) *DeleteHandler {
	return &DeleteHandler{
		pizzas: pizzas,
		events: events,
		logger: service.Logger(logger, "pizza-delete"),
	}
}

// Handle сначала читает пиццу (domain.ErrNotFound для неизвестного id), затем удаляет её.
func (h *DeleteHandler) Handle(ctx context.Context, id domain.Identity) error {
	pizza, err := h.pizzas.Get(id)
	if err != nil {
		return fmt.Errorf("delete pizza: %w", err)
	}
	h.pizzas.Remove(pizza)

	h.logger.WithField("pizza_id", id.String()).Info("pizza deleted")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventPizzaDeleted, id, nil))
	return nil
}

// GetHandler возвращает read-модель пиццы.
type GetHandler struct {
	pizzas repository.Getter[*domain.Pizza]
	logger *log.Entry
}

// NewGetHandler создаёт обработчик чтения пиццы.
func NewGetHandler(pizzas repository.Getter[*domain.Pizza], logger *log.Entry) *GetHandler {
	return &GetHandler{
		pizzas: pizzas,
		logger: service.Logger(logger, "pizza-get"),
	}
}

// Handle возвращает пиццу с ценой, пересчитанной по текущему составу.
func (h *GetHandler) Handle(_ context.Context, id domain.Identity) (View, error) {
	pizza, err := h.pizzas.Get(id)
	if err != nil {
		return View{}, fmt.Errorf("get pizza: %w", err)
	}
	return newView(pizza), nil
}
