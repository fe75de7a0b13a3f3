// Package reminder computes reminder fire times from an event and mirrors
// each reminder both to the device-local notification scheduler and to the
// backend. The two legs are independent best-effort side effects: one
// failing never stops the other from being attempted.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/wb-go/wbf/logger"
)

type localScheduler interface {
	ScheduleAt(at time.Time, n notify.Notification) error
}

type reminderRegistrar interface {
	CreateReminder(ctx context.Context, r domain.Reminder) error
}

type Scheduler struct {
	local localScheduler
	api   reminderRegistrar
	log   logger.Logger
}

func New(local localScheduler, api reminderRegistrar, log logger.Logger) *Scheduler {
	return &Scheduler{local: local, api: api, log: log}
}

// Outcome reports what each leg of a scheduling attempt achieved, so
// callers can observe partial failure without changing their flow.
type Outcome struct {
	RemindAt        time.Time
	LocalScheduled  bool
	BackendRecorded bool
}

// Schedule registers one reminder of the given kind for the event. It is
// not idempotent: calling it twice produces two local notifications and
// two backend records, so callers invoke it at most once per kind.
func (s *Scheduler) Schedule(ctx context.Context, event *domain.Event, kind domain.ReminderKind, userID int64) (Outcome, error) {
	offset, ok := kind.Offset()
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownReminderKind, kind)
	}

	remindAt := event.Date.Add(-offset)
	title, body := messageFor(event, kind)

	localErr := s.local.ScheduleAt(remindAt, notify.Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"event_id": strconv.FormatInt(event.ID, 10),
			"type":     "event_reminder",
		},
	})
	if localErr != nil {
		s.log.Error("failed to schedule local reminder",
			logger.Int64("event_id", event.ID),
			logger.String("kind", string(kind)),
			logger.String("error", localErr.Error()),
		)
	}

	backendErr := s.api.CreateReminder(ctx, domain.Reminder{
		EventID:  event.ID,
		UserID:   userID,
		Kind:     kind,
		RemindAt: remindAt,
	})
	if backendErr != nil {
		s.log.Error("failed to register reminder with backend",
			logger.Int64("event_id", event.ID),
			logger.String("kind", string(kind)),
			logger.String("error", backendErr.Error()),
		)
	}

	outcome := Outcome{
		RemindAt:        remindAt,
		LocalScheduled:  localErr == nil,
		BackendRecorded: backendErr == nil,
	}
	return outcome, errors.Join(localErr, backendErr)
}

func messageFor(event *domain.Event, kind domain.ReminderKind) (title, body string) {
	switch kind {
	case domain.ReminderDayBefore:
		timeOfDay := event.TimeOfDay
		if timeOfDay == "" {
			timeOfDay = "TBD"
		}
		return fmt.Sprintf("Tomorrow: %s", event.Title),
			fmt.Sprintf("Your event %q is tomorrow at %s", event.Title, timeOfDay)
	case domain.ReminderHourBefore:
		return fmt.Sprintf("Starting Soon: %s", event.Title),
			fmt.Sprintf("Your event %q starts in 1 hour", event.Title)
	case domain.Reminder30MinBefore:
		return fmt.Sprintf("Starting Soon: %s", event.Title),
			fmt.Sprintf("Your event %q starts in 30 minutes", event.Title)
	default:
		return "", ""
	}
}
