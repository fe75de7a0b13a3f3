// Package devserver assembles the reference backend used for local
// development and integration testing of the client SDK.
package devserver

import (
	"net/http"

	"github.com/dev-kelz/Event-Management-System/internal/devserver/handler"
	"github.com/wb-go/wbf/ginext"
)

func InitRouter(mode string, h *handler.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/register", h.SignUp)
		api.POST("/login", h.Login)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Registrations
		api.POST("/registrations", h.Register)
		api.GET("/registrations/user/:uid/event/:eid", h.RegistrationStatus)
		api.POST("/registrations/check-in/:id", h.CheckIn)

		// Tasks and stages
		api.POST("/tasks", h.CreateTask)
		api.GET("/events/:id/tasks", h.ListEventTasks)
		api.POST("/tasks/:id/toggle", h.ToggleTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
		api.GET("/stages", h.ListStages)
		api.POST("/stages", h.CreateStage)

		// Notifications; :id on the collection routes is the user id
		api.GET("/notifications/:id", h.ListNotifications)
		api.PUT("/notifications/:id/read", h.MarkNotificationRead)
		api.PUT("/notifications/:id/read-all", h.MarkAllNotificationsRead)
		api.DELETE("/notifications/:id", h.DeleteNotification)

		// Reminders, push tokens, feedback
		api.POST("/reminders", h.CreateReminder)
		api.POST("/push-tokens", h.RegisterPushToken)
		api.POST("/feedback", h.CreateFeedback)
		api.GET("/feedback/event/:id", h.ListEventFeedback)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
