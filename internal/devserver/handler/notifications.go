package handler

import (
	"net/http"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

// notificationView emits both "read" and "is_read" so clients on either
// side of the field rename decode correctly.
type notificationView struct {
	domain.Notification
	IsRead bool `json:"is_read"`
}

func viewNotifications(ns []domain.Notification) []notificationView {
	views := make([]notificationView, 0, len(ns))
	for _, n := range ns {
		views = append(views, notificationView{Notification: n, IsRead: n.Read})
	}
	return views
}

func (h *Handler) ListNotifications(c *ginext.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	unreadOnly := c.Query("unread_only") == "true"

	notifications, err := h.store.NotificationsByUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "notifications": viewNotifications(notifications)})
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.MarkNotificationRead(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) MarkAllNotificationsRead(c *ginext.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.MarkAllNotificationsRead(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) DeleteNotification(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteNotification(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}
