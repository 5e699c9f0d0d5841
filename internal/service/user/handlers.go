// Package user содержит запросы к пользователям.
package user

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
	"github.com/vladislavdragonenkov/pizzeria/internal/service"
)

// GetHandler ищет пользователя по идентификатору.
type GetHandler struct {
	repo   repository.Getter[*domain.User]
	logger *log.Entry
}

// NewGetHandler создаёт обработчик поверх репозитория только для чтения.
func NewGetHandler(repo repository.Getter[*domain.User], logger *log.Entry) *GetHandler {
	return &GetHandler{
		repo:   repo,
		logger: service.Logger(logger, "user-get"),
	}
}

// Handle возвращает пользователя или ошибку, обёрнутую вокруг domain.ErrNotFound.
func (h *GetHandler) Handle(_ context.Context, id domain.Identity) (*domain.User, error) {
	user, err := h.repo.Get(id)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", id.String()).Debug("user lookup failed")
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
