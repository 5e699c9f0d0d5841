// Package ingredient содержит команды над ингредиентами каталога.
package ingredient

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
	"github.com/vladislavdragonenkov/pizzeria/internal/service"
)

// CreateHandler добавляет ингредиент в каталог.
type CreateHandler struct {
	repo   repository.Adder[*domain.Ingredient]
	events domain.EventPublisher
	logger *log.Entry
}

// NewCreateHandler создаёт обработчик создания ингредиента.
func NewCreateHandler(repo repository.Adder[*domain.Ingredient], events domain.EventPublisher, logger *log.Entry) *CreateHandler {
	return &CreateHandler{
		repo:   repo,
		events: events,
		logger: service.Logger(logger, "ingredient-create"),
	}
}

// Handle создаёт ингредиент и возвращает его идентификатор.
func (h *CreateHandler) Handle(ctx context.Context, name string, cost float64) (domain.Identity, error) {
	ingredient := domain.NewIngredient(name, cost)
	h.repo.Add(ingredient)

	h.logger.WithFields(log.Fields{
		"ingredient_id": ingredient.ID().String(),
		"name":          name,
		"cost":          cost,
	}).Info("ingredient created")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventIngredientCreated, ingredient.ID(), map[string]any{
		"name": name,
		"cost": cost,
	}))
	return ingredient.ID(), nil
}

// UpdateHandler меняет название и стоимость ингредиента.
type UpdateHandler struct {
	repo   repository.Updater[*domain.Ingredient]
	events domain.EventPublisher
	logger *log.Entry
}

// NewUpdateHandler создаёт обработчик обновления ингредиента.
func NewUpdateHandler(repo repository.Updater[*domain.Ingredient], events domain.EventPublisher, logger *log.Entry) *UpdateHandler {
	return &UpdateHandler{
		repo:   repo,
		events: events,
		logger: service.Logger(logger, "ingredient-update"),
	}
}

// Handle обновляет оба поля сразу. Уже собранные пиццы хранят свои снимки и не меняются.
func (h *UpdateHandler) Handle(ctx context.Context, id domain.Identity, name string, cost float64) error {
	ingredient, err := h.repo.Get(id)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	ingredient.Update(name, cost)
	h.repo.Update(ingredient)

	h.logger.WithFields(log.Fields{
		"ingredient_id": id.String(),
		"name":          name,
		"cost":          cost,
	}).Info("ingredient updated")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventIngredientUpdated, id, map[string]any{
		"name": name,
		"cost": cost,
	}))
	return nil
}
