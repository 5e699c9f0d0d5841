// Package customer содержит команды над клиентами.
package customer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
	"github.com/vladislavdragonenkov/pizzeria/internal/service"
)

// CreateHandler регистрирует нового клиента.
type CreateHandler struct {
	repo   repository.Adder[*domain.Customer]
	events domain.EventPublisher
	logger *log.Entry
}

// NewCreateHandler создаёт обработчик; ему достаточно возможности Add.
func NewCreateHandler(repo repository.Adder[*domain.Customer], events domain.EventPublisher, logger *log.Entry) *CreateHandler {
	return &CreateHandler{
		repo:   repo,
		events: events,
		logger: service.Logger(logger, "customer-create"),
	}
}

// Handle создаёт клиента с новым идентификатором и возвращает этот идентификатор.
func (h *CreateHandler) Handle(ctx context.Context) (domain.Identity, error) {
	customer := domain.NewCustomer()
	h.repo.Add(customer)

	h.logger.WithField("customer_id", customer.ID().String()).Info("customer created")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventCustomerCreated, customer.ID(), nil))
	return customer.ID(), nil
}

// UpdateHandler перезаписывает клиента по идентификатору.
type UpdateHandler struct {
	repo   repository.Updater[*domain.Customer]
	events domain.EventPublisher
	logger *log.Entry
}

// NewUpdateHandler создаёт обработчик; ему нужны Get и Update.
func NewUpdateHandler(repo repository.Updater[*domain.Customer], events domain.EventPublisher, logger *log.Entry) *UpdateHandler {
	return &UpdateHandler{
		repo:   repo,
		events: events,
		logger: service.Logger(logger, "customer-update"),
	}
}

// Handle читает клиента и сохраняет его заново. domain.ErrNotFound пробрасывается вызывающему.
func (h *UpdateHandler) Handle(ctx context.Context, id domain.Identity) error {
	customer, err := h.repo.Get(id)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	h.repo.Update(customer)

	h.logger.WithField("customer_id", id.String()).Info("customer updated")
	service.Notify(ctx, h.events, h.logger, domain.NewEvent(domain.EventCustomerUpdated, id, nil))
	return nil
}
