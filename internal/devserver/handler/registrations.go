package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type createRegistrationRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
	UserID  int64 `json:"user_id" binding:"required"`
}

func (h *Handler) Register(c *ginext.Context) {
	var req createRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.store.EventByID(c.Request.Context(), req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if event.IsOrganizer(req.UserID) {
		h.handleError(c, domain.ErrOwnEvent)
		return
	}

	reg := domain.Registration{
		EventID: req.EventID,
		UserID:  req.UserID,
	}
	if err := h.store.CreateRegistration(c.Request.Context(), &reg); err != nil {
		h.handleError(c, err)
		return
	}

	// Seed the user's notification feed so the registration shows up there.
	note := domain.Notification{
		UserID:  req.UserID,
		Type:    "registration_confirmed",
		Title:   "Registration Confirmed",
		Message: fmt.Sprintf("You are registered for %s.", event.Title),
		EventID: &req.EventID,
	}
	if err := h.store.CreateNotification(c.Request.Context(), &note); err != nil {
		h.log.Error("create registration notification",
			logger.Int64("event_id", req.EventID),
			logger.Int64("user_id", req.UserID),
			logger.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "registration": reg})
}

func (h *Handler) RegistrationStatus(c *ginext.Context) {
	userID, ok := pathID(c, "uid")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eid")
	if !ok {
		return
	}

	reg, err := h.store.RegistrationByUserEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			c.JSON(http.StatusOK, ginext.H{"success": true, "registered": false})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "registered": true, "registration": reg})
}

func (h *Handler) CheckIn(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.CheckIn(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}
