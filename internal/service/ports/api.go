package ports

import (
	"context"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
)

type EventAPI interface {
	Events(ctx context.Context) ([]domain.Event, error)
	Event(ctx context.Context, id int64) (*domain.Event, error)
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type RegistrationAPI interface {
	RegisterForEvent(ctx context.Context, eventID, userID int64) (*domain.Registration, error)
	RegistrationStatus(ctx context.Context, userID, eventID int64) (bool, error)
}

type NotificationAPI interface {
	Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, id int64) error
}

type TaskAPI interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	EventTasks(ctx context.Context, eventID int64, stageID *int64) ([]domain.Task, error)
	ToggleTask(ctx context.Context, taskID int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

type StageAPI interface {
	Stages(ctx context.Context) ([]domain.Stage, error)
	CreateStage(ctx context.Context, stage domain.Stage) (*domain.Stage, error)
}
