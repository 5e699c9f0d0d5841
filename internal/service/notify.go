// Package service содержит общие помощники для обработчиков команд и запросов каталога.
package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// Notify публикует событие после успешного изменения хранилища.
// Ошибка публикации не откатывает изменение и не возвращается вызывающему.
func Notify(ctx context.Context, publisher domain.EventPublisher, logger *log.Entry, event domain.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WithError(err).WithField("event_type", event.Type).Debug("event not delivered")
	}
}

// Logger возвращает logger по умолчанию для обработчика, если он не передан.
func Logger(logger *log.Entry, component string) *log.Entry {
	if logger == nil {
		return log.WithField("component", component)
	}
	return logger
}
