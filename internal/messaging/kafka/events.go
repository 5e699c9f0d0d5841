package kafka

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// Topics для Kafka
const (
	TopicCatalogEvents = "pizzeria.catalog.events"
)

// Заголовки сообщений
const (
	HeaderEventType     = "x-event-type"
	HeaderAggregateType = "x-aggregate-type"
)

// CatalogEvent — конверт доменного события в том виде, в каком он уходит в Kafka.
type CatalogEvent struct {
	ID            string           `json:"id"`
	EventType     domain.EventType `json:"event_type"`
	AggregateType string           `json:"aggregate_type"`
	AggregateID   domain.Identity  `json:"aggregate_id"`
	OccurredAt    time.Time        `json:"occurred_at"`
	PublishedAt   time.Time        `json:"published_at"`
	Payload       map[string]any   `json:"payload,omitempty"`
}

// NewCatalogEvent оборачивает доменное событие в конверт с уникальным ID сообщения.
func NewCatalogEvent(event domain.Event) *CatalogEvent {
	return &CatalogEvent{
		ID:            uuid.NewString(),
		EventType:     event.Type,
		AggregateType: aggregateType(event.Type),
		AggregateID:   event.AggregateID,
		OccurredAt:    event.OccurredAt,
		PublishedAt:   time.Now().UTC(),
		Payload:       event.Payload,
	}
}

// aggregateType извлекает тип агрегата из префикса события ("pizza.created" -> "pizza").
func aggregateType(eventType domain.EventType) string {
	name, _, _ := strings.Cut(string(eventType), ".")
	return name
}
