package health

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/storage/memory"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHandler("v1.0.0")

	// Добавляем здоровую проверку
	handler.RegisterChecker("test-healthy", NewSimpleChecker("test", func() error {
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != StatusHealthy {
		t.Errorf("expected status healthy, got %s", response.Status)
	}

	if response.Version != "v1.0.0" {
		t.Errorf("expected version v1.0.0, got %s", response.Version)
	}

	if len(response.Checks) != 1 {
		t.Errorf("expected 1 check, got %d", len(response.Checks))
	}
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	handler := NewHandler("v1.0.0")

	// Добавляем нездоровую проверку
	handler.RegisterChecker("test-unhealthy", NewSimpleChecker("test", func() error {
		return errors.New("service unavailable")
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != StatusUnhealthy {
		t.Errorf("expected status unhealthy, got %s", response.Status)
	}
}

func TestLivenessHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	w := httptest.NewRecorder()

	LivenessHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "ok" {
		t.Errorf("expected body 'ok', got %s", w.Body.String())
	}
}

func TestReadinessHandler(t *testing.T) {
	handler := NewHandler("v1.0.0")

	// Добавляем здоровую проверку
	handler.RegisterChecker("test", NewSimpleChecker("test", func() error {
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	handler.ReadinessHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "ready" {
		t.Errorf("expected body 'ready', got %s", w.Body.String())
	}
}

func TestReadinessHandler_NotReady(t *testing.T) {
	handler := NewHandler("v1.0.0")

	// Добавляем нездоровую проверку
	handler.RegisterChecker("test", NewSimpleChecker("test", func() error {
		return errors.New("not ready")
	}))

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	handler.ReadinessHandler(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}

	if w.Body.String() != "not ready" {
		t.Errorf("expected body 'not ready', got %s", w.Body.String())
	}
}

func TestSimpleChecker(t *testing.T) {
	checker := NewSimpleChecker("test", func() error {
		time.Sleep(10 * time.Millisecond)
		return nil
	})

	check := checker.Check()

	if check.Status != StatusHealthy {
		t.Errorf("expected status healthy, got %s", check.Status)
	}

	if check.DurationMs < 10 {
		t.Errorf("expected duration >= 10ms, got %dms", check.DurationMs)
	}
}

func TestSimpleChecker_Error(t *testing.T) {
	checker := NewSimpleChecker("test", func() error {
		return errors.New("test error")
	})

	check := checker.Check()

	if check.Status != StatusUnhealthy {
		t.Errorf("expected status unhealthy, got %s", check.Status)
	}

	if check.Message != "test error" {
		t.Errorf("expected message 'test error', got %s", check.Message)
	}
}

type brokenGetter struct{}

func (brokenGetter) Get(domain.Identity) (*domain.Pizza, error) {
	return nil, errors.New("store corrupted")
}

// countingGetter считает обращения к Get.
type countingGetter struct {
	gets int
}

func (c *countingGetter) Get(domain.Identity) (*domain.Pizza, error) {
	c.gets++
	return nil, domain.ErrNotFound
}

func (c *countingGetter) Len() int {
	return 0
}

func TestRepositoryChecker_DoesNotLookUpEntities(t *testing.T) {
	repo := &countingGetter{}
	checker := NewRepositoryChecker("pizzas", repo)

	for i := 0; i < 3; i++ {
		if check := checker.Check(); check.Status != StatusHealthy {
			t.Fatalf("expected healthy repository, got %s: %s", check.Status, check.Message)
		}
	}
	if repo.gets != 0 {
		t.Errorf("expected no Get calls from health checks, got %d", repo.gets)
	}
}

func TestSimpleChecker_Degraded(t *testing.T) {
	checker := NewSimpleChecker("kafka", func() error {
		return fmt.Errorf("%w: kafka is not configured", ErrDegraded)
	})

	check := checker.Check()
	if check.Status != StatusDegraded {
		t.Errorf("expected status degraded, got %s", check.Status)
	}
	if check.Message == "" {
		t.Error("degraded check should carry a message")
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("ok", NewSimpleChecker("ok", func() error { return nil }))
	handler.RegisterChecker("kafka", NewSimpleChecker("kafka", func() error { return ErrDegraded }))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("degraded service should answer 200, got %d", w.Code)
	}
	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != StatusDegraded {
		t.Errorf("expected status degraded, got %s", response.Status)
	}

	ready := httptest.NewRecorder()
	handler.ReadinessHandler(ready, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if ready.Code != http.StatusOK {
		t.Errorf("degraded service should be ready, got %d", ready.Code)
	}
}

func TestRepositoryChecker(t *testing.T) {
	healthy := NewRepositoryChecker("pizzas", memory.NewPizzaRepository())
	if check := healthy.Check(); check.Status != StatusHealthy {
		t.Errorf("expected healthy repository, got %s: %s", check.Status, check.Message)
	}

	// Репозиторий без Len не может быть проверен без обращения к Get.
	broken := NewRepositoryChecker("pizzas", brokenGetter{})
	if check := broken.Check(); check.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy repository, got %s", check.Status)
	}

	missing := NewRepositoryChecker("pizzas", nil)
	if check := missing.Check(); check.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy for nil repository, got %s", check.Status)
	}
}

func TestHandler_Names(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("users", NewSimpleChecker("users", func() error { return nil }))
	handler.RegisterChecker("customers", NewSimpleChecker("customers", func() error { return nil }))

	names := handler.Names()
	if len(names) != 2 || names[0] != "customers" || names[1] != "users" {
		t.Errorf("unexpected names: %v", names)
	}
}
