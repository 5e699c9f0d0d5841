package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// CatalogMetrics содержит метрики репозиториев и публикации событий каталога.
type CatalogMetrics struct {
	registerer prometheus.Registerer

	// Операции над коллекциями
	operations *prometheus.CounterVec
	notFound   *prometheus.CounterVec

	// Публикация доменных событий
	eventsPublished *prometheus.CounterVec
	publishDuration prometheus.Histogram
}

// NewCatalogMetrics создаёт метрики в глобальном реестре Prometheus.
func NewCatalogMetrics() *CatalogMetrics {
	return NewCatalogMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCatalogMetricsWithRegisterer создаёт метрики в указанном реестре (удобно для тестов).
func NewCatalogMetricsWithRegisterer(registerer prometheus.Registerer) *CatalogMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CatalogMetrics{
		registerer: registerer,
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "pizzeria_repository_operations_total",
			Help: "Total number of repository operations by collection, operation and outcome",
		}, []string{"collection", "operation", "outcome"}),
		notFound: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "pizzeria_repository_not_found_total",
			Help: "Total number of lookups that did not find the requested entity",
		}, []string{"collection"}),
		eventsPublished: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "pizzeria_events_published_total",
			Help: "Total number of domain events handed to the publisher by type and outcome",
		}, []string{"event_type", "outcome"}),
		publishDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "pizzeria_event_publish_duration_seconds",
			Help:    "Duration of domain event publishing in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
	}
}

// ObserveOperation реализует repository.Observer.
func (m *CatalogMetrics) ObserveOperation(collection string, op repository.Operation, err error) {
	outcome := outcomeOK
	switch {
	case err == nil:
	case domain.IsNotFound(err):
		outcome = outcomeNotFound
		m.notFound.WithLabelValues(collection).Inc()
	default:
		outcome = outcomeError
	}
	m.operations.WithLabelValues(collection, string(op), outcome).Inc()
}

// RecordEventPublished учитывает результат и длительность публикации события.
func (m *CatalogMetrics) RecordEventPublished(eventType domain.EventType, err error, duration time.Duration) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	m.eventsPublished.WithLabelValues(string(eventType), outcome).Inc()
	m.publishDuration.Observe(duration.Seconds())
}

// TrackCollectionSize регистрирует gauge с текущим размером коллекции.
// Повторная регистрация той же коллекции в реестре переключает gauge на новый источник.
func (m *CatalogMetrics) TrackCollectionSize(collection string, size func() int) {
	gauge := newCollectionSize(collection, size)
	if err := m.registerer.Register(gauge); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*collectionSize)
			if !ok {
				panic(fmt.Sprintf("collection gauge %q already registered with unexpected type", collection))
			}
			existing.setSource(size)
			return
		}
		panic(fmt.Sprintf("register collection gauge %q: %v", collection, err))
	}
}

// collectionSize отдаёт размер коллекции из заменяемого источника.
type collectionSize struct {
	desc *prometheus.Desc

	mu   sync.RWMutex
	size func() int
}

func newCollectionSize(collection string, size func() int) *collectionSize {
	return &collectionSize{
		desc: prometheus.NewDesc(
			"pizzeria_repository_entities",
			"Number of entities currently held by a repository",
			nil,
			prometheus.Labels{"collection": collection},
		),
		size: size,
	}
}

func (c *collectionSize) setSource(size func() int) {
	c.mu.Lock()
	c.size = size
	c.mu.Unlock()
}

func (c *collectionSize) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *collectionSize) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	size := c.size
	c.mu.RUnlock()
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(size()))
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

var _ repository.Observer = (*CatalogMetrics)(nil)
