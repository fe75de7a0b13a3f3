package ports

import (
	"context"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/dev-kelz/Event-Management-System/internal/reminder"
)

// Announcer sends an immediate device-local notification.
type Announcer interface {
	Send(ctx context.Context, n notify.Notification) error
}

// ReminderScheduler registers a reminder of the given kind for an event,
// best-effort on both the local and the backend leg.
type ReminderScheduler interface {
	Schedule(ctx context.Context, event *domain.Event, kind domain.ReminderKind, userID int64) (reminder.Outcome, error)
}
