package service_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/service"
)

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, domain.Event) error {
	p.calls++
	return errors.New("broker down")
}

func TestNotify_SwallowsPublishErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	publisher := &failingPublisher{}

	service.Notify(context.Background(), publisher, log.NewEntry(logger), domain.NewEvent(domain.EventPizzaCreated, domain.NewIdentity(), nil))

	require.Equal(t, 1, publisher.calls)
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, log.DebugLevel, hook.LastEntry().Level)
}

func TestNotify_NilPublisher(t *testing.T) {
	require.NotPanics(t, func() {
		service.Notify(context.Background(), nil, nil, domain.NewEvent(domain.EventPizzaCreated, domain.NewIdentity(), nil))
	})
}

func TestLogger_Default(t *testing.T) {
	entry := service.Logger(nil, "pizza-get")
	require.Equal(t, "pizza-get", entry.Data["component"])

	custom := log.WithField("layer", "test")
	require.Same(t, custom, service.Logger(custom, "ignored"))
}
