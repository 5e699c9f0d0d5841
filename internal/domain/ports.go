package domain

import "context"

// EventPublisher отправляет доменные события наружу (Kafka или журнал).
type EventPublisher interface {
	// Publish передаёт событие; ошибка не откатывает уже применённое изменение.
	Publish(ctx context.Context, event Event) error
}
