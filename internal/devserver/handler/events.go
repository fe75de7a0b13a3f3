package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type createEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeOfDay   string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedBy   int64  `json:"created_by" binding:"required"`
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	TimeOfDay   *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// parseEventDate accepts the full RFC3339 form the SDK sends and the bare
// calendar date older clients send.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected RFC3339 or YYYY-MM-DD", domain.ErrValidation)
	}
	return t, nil
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event := domain.Event{
		Title:       req.Title,
		Date:        date,
		TimeOfDay:   req.TimeOfDay,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   req.CreatedBy,
	}
	if err := h.store.CreateEvent(c.Request.Context(), &event); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "event": event})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.store.EventByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": event})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "events": events})
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.store.EventByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		event.Date = date
	}
	if req.TimeOfDay != nil {
		event.TimeOfDay = *req.TimeOfDay
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}

	if err := h.store.UpdateEvent(c.Request.Context(), event); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": event})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}
