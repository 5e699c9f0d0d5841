package kafka

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// EventPublisher публикует доменные события каталога в Kafka topic.
type EventPublisher struct {
	producer *Producer
	topic    string
}

// NewEventPublisher создаёт Kafka-реализацию domain.EventPublisher.
func NewEventPublisher(producer *Producer, topic string) *EventPublisher {
	if topic == "" {
		topic = TopicCatalogEvents
	}
	return &EventPublisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет событие; ключом сообщения служит идентификатор агрегата,
// поэтому события одного агрегата попадают в одну партицию.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("%w: kafka publisher is not initialized", domain.ErrEventPublish)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEventPublish, err)
	}

	envelope := NewCatalogEvent(event)
	headers := map[string]string{
		HeaderEventType:     string(envelope.EventType),
		HeaderAggregateType: envelope.AggregateType,
	}
	if err := p.producer.PublishEvent(p.topic, event.AggregateID.String(), envelope, headers); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEventPublish, err)
	}
	return nil
}

var _ domain.EventPublisher = (*EventPublisher)(nil)
