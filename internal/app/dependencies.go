package app

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/pizzeria/internal/health"
	"github.com/vladislavdragonenkov/pizzeria/internal/messaging"
	"github.com/vladislavdragonenkov/pizzeria/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/pizzeria/internal/metrics"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/customer"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/ingredient"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/pizza"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/user"
	"github.com/vladislavdragonenkov/pizzeria/internal/storage/memory"
	"github.com/vladislavdragonenkov/pizzeria/internal/version"
)

const (
	breakerMaxFailures  = 5
	breakerResetTimeout = 30 * time.Second
)

// Handlers собирает обработчики команд и запросов каталога.
type Handlers struct {
	CreateCustomer   *customer.CreateHandler
	UpdateCustomer   *customer.UpdateHandler
	GetUser          *user.GetHandler
	CreateIngredient *ingredient.CreateHandler
	UpdateIngredient *ingredient.UpdateHandler
	CreatePizza      *pizza.CreateHandler
	UpdatePizza      *pizza.UpdateHandler
	PizzaIngredients *pizza.IngredientsHandler
	DeletePizza      *pizza.DeleteHandler
	GetPizza         *pizza.GetHandler
}

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Customers   repository.Repository[*domain.Customer]
	Users       repository.Getter[*domain.User]
	Ingredients repository.Repository[*domain.Ingredient]
	Pizzas      repository.Repository[*domain.Pizza]
	Publisher   domain.EventPublisher
	Metrics     *metrics.CatalogMetrics
	Health      *healthcheck.Handler
	Handlers    Handlers
	Logger      *log.Entry

	producer *kafka.Producer
	breaker  *messaging.CircuitBreaker
}

// NewDependencies создаёт хранилища, публикатор событий и обработчики.
// Недоступная Kafka не считается фатальной: события уходят в журнал, а health получает статус degraded.
func NewDependencies(cfg Config, registerer prometheus.Registerer, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	catalogMetrics := metrics.NewCatalogMetricsWithRegisterer(registerer)
	observe := repository.WithObserver(catalogMetrics)

	var users []*domain.User
	if cfg.SeedDemoData {
		users = append(users, domain.NewUser())
	}

	deps := &Dependencies{
		Customers:   memory.NewCustomerRepository(observe),
		Users:       memory.NewUserRepository(users, observe),
		Ingredients: memory.NewIngredientRepository(observe),
		Pizzas:      memory.NewPizzaRepository(observe),
		Metrics:     catalogMetrics,
		Health:      healthcheck.NewHandler(version.GetVersion()),
		Logger:      logger,
	}

	eventsLogger := logger.WithField("layer", "events")
	producer, kafkaErr := initKafkaProducer(cfg.KafkaBrokers, logger)
	var publisher domain.EventPublisher
	if producer != nil {
		deps.producer = producer
		deps.breaker = messaging.NewCircuitBreaker(kafka.NewEventPublisher(producer, cfg.EventsTopic), breakerMaxFailures, breakerResetTimeout, eventsLogger)
		publisher = messaging.NewRetryingPublisher(deps.breaker, messaging.DefaultRetryConfig(), eventsLogger)
	} else {
		publisher = messaging.NewLogPublisher(eventsLogger)
	}
	deps.Publisher = messaging.NewInstrumentedPublisher(publisher, catalogMetrics, eventsLogger)

	deps.registerHealth(kafkaErr)
	deps.trackSizes()
	deps.Handlers = newHandlers(deps, logger.WithField("layer", "service"))
	return deps
}

// Close освобождает внешние ресурсы.
func (d *Dependencies) Close() {
	closeKafka(d.producer, d.Logger)
	d.producer = nil
}

func newHandlers(d *Dependencies, logger *log.Entry) Handlers {
	return Handlers{
		CreateCustomer:   customer.NewCreateHandler(d.Customers, d.Publisher, logger.WithField("component", "customer-create")),
		UpdateCustomer:   customer.NewUpdateHandler(d.Customers, d.Publisher, logger.WithField("component", "customer-update")),
		GetUser:          user.NewGetHandler(d.Users, logger.WithField("component", "user-get")),
		CreateIngredient: ingredient.NewCreateHandler(d.Ingredients, d.Publisher, logger.WithField("component", "ingredient-create")),
		UpdateIngredient: ingredient.NewUpdateHandler(d.Ingredients, d.Publisher, logger.WithField("component", "ingredient-update")),
		CreatePizza:      pizza.NewCreateHandler(d.Pizzas, d.Ingredients, d.Publisher, logger.WithField("component", "pizza-create")),
		UpdatePizza:      pizza.NewUpdateHandler(d.Pizzas, d.Publisher, logger.WithField("component", "pizza-update")),
		PizzaIngredients: pizza.NewIngredientsHandler(d.Pizzas, d.Ingredients, d.Publisher, logger.WithField("component", "pizza-ingredients")),
		DeletePizza:      pizza.NewDeleteHandler(d.Pizzas, d.Publisher, logger.WithField("component", "pizza-delete")),
		GetPizza:         pizza.NewGetHandler(d.Pizzas, logger.WithField("component", "pizza-get")),
	}
}

func (d *Dependencies) registerHealth(kafkaErr error) {
	d.Health.RegisterChecker("customers", healthcheck.NewRepositoryChecker("customers", d.Customers))
	d.Health.RegisterChecker("users", healthcheck.NewRepositoryChecker("users", d.Users))
	d.Health.RegisterChecker("ingredients", healthcheck.NewRepositoryChecker("ingredients", d.Ingredients))
	d.Health.RegisterChecker("pizzas", healthcheck.NewRepositoryChecker("pizzas", d.Pizzas))
	d.Health.RegisterChecker("events", healthcheck.NewSimpleChecker("events", func() error {
		if kafkaErr != nil {
			return fmt.Errorf("%w: kafka unavailable, events are only logged: %v", healthcheck.ErrDegraded, kafkaErr)
		}
		if d.breaker != nil {
			if err := d.breaker.Check(); err != nil {
				return fmt.Errorf("%w: %v", healthcheck.ErrDegraded, err)
			}
		}
		return nil
	}))
}

func (d *Dependencies) trackSizes() {
	repos := map[string]any{
		"customers":   d.Customers,
		"users":       d.Users,
		"ingredients": d.Ingredients,
		"pizzas":      d.Pizzas,
	}
	for name, repo := range repos {
		if _, ok := memory.Size(repo); !ok {
			continue
		}
		d.Metrics.TrackCollectionSize(name, func() int {
			size, _ := memory.Size(repo)
			return size
		})
	}
}
