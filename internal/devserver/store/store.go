// Package store defines the persistence port of the reference dev backend
// and its in-memory implementation. A Postgres implementation lives in the
// postgres subpackage.
package store

import (
	"context"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
)

type Store interface {
	// Users
	CreateUser(ctx context.Context, input domain.SignUpInput, passwordHash string) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, string, error)
	UserByID(ctx context.Context, id int64) (*domain.User, error)

	// Events
	CreateEvent(ctx context.Context, e *domain.Event) error
	EventByID(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, e *domain.Event) error
	DeleteEvent(ctx context.Context, id int64) error

	// Registrations
	CreateRegistration(ctx context.Context, r *domain.Registration) error
	RegistrationByUserEvent(ctx context.Context, userID, eventID int64) (*domain.Registration, error)
	CheckIn(ctx context.Context, registrationID int64) error

	// Tasks and stages
	CreateTask(ctx context.Context, t *domain.Task) error
	TaskByID(ctx context.Context, id int64) (*domain.Task, error)
	TasksByEvent(ctx context.Context, eventID int64, stageID *int64) ([]domain.Task, error)
	ToggleTask(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ListStages(ctx context.Context) ([]domain.Stage, error)
	CreateStage(ctx context.Context, s *domain.Stage) error

	// Notifications
	CreateNotification(ctx context.Context, n *domain.Notification) error
	NotificationsByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, id int64) error

	// Reminders
	CreateReminder(ctx context.Context, r *domain.Reminder) error

	// Push tokens and feedback
	UpsertPushToken(ctx context.Context, t domain.PushToken) error
	CreateFeedback(ctx context.Context, f *domain.Feedback) error
	FeedbackByEvent(ctx context.Context, eventID int64) ([]domain.Feedback, error)
}
