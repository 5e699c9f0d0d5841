// Package messaging содержит реализации domain.EventPublisher, не привязанные к брокеру.
package messaging

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// LogPublisher пишет события в журнал. Используется, когда Kafka не настроена.
type LogPublisher struct {
	logger *log.Entry
}

// NewLogPublisher создаёт публикатор, который только логирует события.
func NewLogPublisher(logger *log.Entry) *LogPublisher {
	if logger == nil {
		logger = log.WithField("component", "events")
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.Event) error {
	p.logger.WithFields(log.Fields{
		"event_type":   event.Type,
		"aggregate_id": event.AggregateID.String(),
	}).Info("domain event")
	return nil
}

// PublishRecorder учитывает результат публикации (реализуется метриками).
type PublishRecorder interface {
	RecordEventPublished(eventType domain.EventType, err error, duration time.Duration)
}

// InstrumentedPublisher добавляет к публикатору метрики и логирование ошибок.
type InstrumentedPublisher struct {
	next     domain.EventPublisher
	recorder PublishRecorder
	logger   *log.Entry
}

// NewInstrumentedPublisher оборачивает next. recorder может быть nil.
func NewInstrumentedPublisher(next domain.EventPublisher, recorder PublishRecorder, logger *log.Entry) *InstrumentedPublisher {
	if logger == nil {
		logger = log.WithField("component", "events")
	}
	return &InstrumentedPublisher{
		next:     next,
		recorder: recorder,
		logger:   logger,
	}
}

func (p *InstrumentedPublisher) Publish(ctx context.Context, event domain.Event) error {
	start := time.Now()
	err := p.next.Publish(ctx, event)
	if p.recorder != nil {
		p.recorder.RecordEventPublished(event.Type, err, time.Since(start))
	}
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"event_type":   event.Type,
			"aggregate_id": event.AggregateID.String(),
		}).Warn("failed to publish domain event")
	}
	return err
}

var (
	_ domain.EventPublisher = (*LogPublisher)(nil)
	_ domain.EventPublisher = (*InstrumentedPublisher)(nil)
)
