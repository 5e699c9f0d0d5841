package domain

import "time"

// EventType перечисляет доменные события каталога.
type EventType string

const (
	EventCustomerCreated        EventType = "customer.created"
	EventCustomerUpdated        EventType = "customer.updated"
	EventIngredientCreated      EventType = "ingredient.created"
	EventIngredientUpdated      EventType = "ingredient.updated"
	EventPizzaCreated           EventType = "pizza.created"
	EventPizzaUpdated           EventType = "pizza.updated"
	EventPizzaDeleted           EventType = "pizza.deleted"
	EventPizzaIngredientAdded   EventType = "pizza.ingredient_added"
	EventPizzaIngredientRemoved EventType = "pizza.ingredient_removed"
)

// Event описывает факт изменения агрегата.
type Event struct {
	Type        EventType      `json:"event_type"`
	AggregateID Identity       `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// NewEvent создаёт событие с текущим временем в UTC.
func NewEvent(eventType EventType, aggregateID Identity, payload map[string]any) Event {
	return Event{
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
}
