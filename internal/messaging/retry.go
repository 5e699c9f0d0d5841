package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

// RetryConfig конфигурация повторной публикации.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию.
// Публикация синхронная, поэтому задержки небольшие.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      time.Second,
		BackoffFactor: 2.0,
	}
}

// RetryingPublisher повторяет неудачную публикацию с экспоненциальной задержкой.
type RetryingPublisher struct {
	next   domain.EventPublisher
	config RetryConfig
	logger *log.Entry
}

// NewRetryingPublisher оборачивает next. Значения MaxAttempts < 1 трактуются как одна попытка.
func NewRetryingPublisher(next domain.EventPublisher, config RetryConfig, logger *log.Entry) *RetryingPublisher {
	if logger == nil {
		logger = log.WithField("component", "events-retry")
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.BackoffFactor < 1 {
		config.BackoffFactor = 1
	}
	return &RetryingPublisher{
		next:   next,
		config: config,
		logger: logger,
	}
}

func (p *RetryingPublisher) Publish(ctx context.Context, event domain.Event) error {
	var lastErr error
	delay := p.config.InitialDelay

	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, event)
		if err == nil {
			if attempt > 1 {
				p.logger.WithFields(log.Fields{
					"event_type": event.Type,
					"attempt":    attempt,
				}).Info("event published after retry")
			}
			return nil
		}
		lastErr = err

		if !shouldRetry(err) || attempt == p.config.MaxAttempts {
			break
		}

		p.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.Type,
			"attempt":    attempt,
			"delay":      delay,
		}).Debug("event publish failed, retrying")

		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		delay = time.Duration(float64(delay) * p.config.BackoffFactor)
		if p.config.MaxDelay > 0 && delay > p.config.MaxDelay {
			delay = p.config.MaxDelay
		}
	}

	return fmt.Errorf("publish failed after %d attempts: %w", p.config.MaxAttempts, lastErr)
}

// shouldRetry не повторяет отмену контекста и открытый circuit breaker.
func shouldRetry(err error) bool {
	return !isCallerCancellation(err) && !errors.Is(err, ErrCircuitOpen)
}

var _ domain.EventPublisher = (*RetryingPublisher)(nil)
