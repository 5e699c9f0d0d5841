package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
)

type stubPublisher struct {
	err    error
	events []domain.Event
}

func (s *stubPublisher) Publish(_ context.Context, event domain.Event) error {
	s.events = append(s.events, event)
	return s.err
}

type stubRecorder struct {
	types []domain.EventType
	errs  []error
}

func (s *stubRecorder) RecordEventPublished(eventType domain.EventType, err error, _ time.Duration) {
	s.types = append(s.types, eventType)
	s.errs = append(s.errs, err)
}

func TestLogPublisher_Publish(t *testing.T) {
	logger, hook := test.NewNullLogger()
	publisher := NewLogPublisher(log.NewEntry(logger))

	id := domain.NewIdentity()
	if err := publisher.Publish(context.Background(), domain.NewEvent(domain.EventCustomerCreated, id, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Data["event_type"] != domain.EventCustomerCreated {
		t.Errorf("unexpected event_type field: %v", entry.Data["event_type"])
	}
	if entry.Data["aggregate_id"] != id.String() {
		t.Errorf("unexpected aggregate_id field: %v", entry.Data["aggregate_id"])
	}
}

func TestInstrumentedPublisher_Success(t *testing.T) {
	next := &stubPublisher{}
	recorder := &stubRecorder{}
	publisher := NewInstrumentedPublisher(next, recorder, nil)

	if err := publisher.Publish(context.Background(), domain.NewEvent(domain.EventPizzaCreated, domain.NewIdentity(), nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(next.events) != 1 {
		t.Fatalf("expected 1 forwarded event, got %d", len(next.events))
	}
	if len(recorder.types) != 1 || recorder.types[0] != domain.EventPizzaCreated || recorder.errs[0] != nil {
		t.Fatalf("unexpected recorder state: %v %v", recorder.types, recorder.errs)
	}
}

func TestInstrumentedPublisher_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	boom := errors.New("broker down")
	next := &stubPublisher{err: boom}
	recorder := &stubRecorder{}
	publisher := NewInstrumentedPublisher(next, recorder, log.NewEntry(logger))

	err := publisher.Publish(context.Background(), domain.NewEvent(domain.EventPizzaUpdated, domain.NewIdentity(), nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if !errors.Is(recorder.errs[0], boom) {
		t.Fatalf("recorder should see the error, got %v", recorder.errs[0])
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != log.WarnLevel {
		t.Fatal("failure should be logged at warn level")
	}
}

func TestInstrumentedPublisher_NilRecorder(t *testing.T) {
	publisher := NewInstrumentedPublisher(&stubPublisher{}, nil, nil)
	if err := publisher.Publish(context.Background(), domain.NewEvent(domain.EventPizzaCreated, domain.NewIdentity(), nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
}
