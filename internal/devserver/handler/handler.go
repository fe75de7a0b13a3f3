// Package handler exposes the dev backend's REST surface. Responses
// follow the contract the mobile clients expect: a {"success": true, ...}
// envelope on 2xx and a {"detail": "..."} body on errors.
package handler

import (
	"errors"
	"net/http"

	"github.com/dev-kelz/Event-Management-System/internal/devserver/auth"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/store"
	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type Handler struct {
	store  store.Store
	tokens *auth.TokenIssuer
	log    logger.Logger
}

func New(store store.Store, tokens *auth.TokenIssuer, log logger.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, log: log}
}

func detail(c *ginext.Context, code int, msg string) {
	c.JSON(code, ginext.H{"detail": msg})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrStageNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		detail(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrOwnEvent):
		detail(c, http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrValidation):
		detail(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		detail(c, http.StatusUnauthorized, err.Error())

	default:
		detail(c, http.StatusInternalServerError, "internal server error")
	}
}
