package handler

import (
	"net/http"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type createReminderRequest struct {
	EventID  int64  `json:"event_id" binding:"required"`
	UserID   int64  `json:"user_id" binding:"required"`
	Kind     string `json:"reminder_type" binding:"required"`
	RemindAt string `json:"remind_at" binding:"required"`
}

type pushTokenRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Token      string `json:"token" binding:"required"`
	DeviceType string `json:"device_type"`
}

type createFeedbackRequest struct {
	EventID int64  `json:"event_id" binding:"required"`
	UserID  int64  `json:"user_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *Handler) CreateReminder(c *ginext.Context) {
	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		detail(c, http.StatusBadRequest, "remind_at must be RFC3339")
		return
	}

	reminder := domain.Reminder{
		EventID:  req.EventID,
		UserID:   req.UserID,
		Kind:     domain.ReminderKind(req.Kind),
		RemindAt: remindAt,
	}
	if err := h.store.CreateReminder(c.Request.Context(), &reminder); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "reminder": reminder})
}

func (h *Handler) RegisterPushToken(c *ginext.Context) {
	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	token := domain.PushToken{
		UserID:     req.UserID,
		Token:      req.Token,
		DeviceType: req.DeviceType,
	}
	if err := h.store.UpsertPushToken(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) CreateFeedback(c *ginext.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	feedback := domain.Feedback{
		EventID: req.EventID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.store.CreateFeedback(c.Request.Context(), &feedback); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "feedback": feedback})
}

func (h *Handler) ListEventFeedback(c *ginext.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	feedback, err := h.store.FeedbackByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if feedback == nil {
		feedback = []domain.Feedback{}
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "feedback": feedback})
}
