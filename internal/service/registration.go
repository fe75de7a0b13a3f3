package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RegistrationService orchestrates "register for event" as one user-visible
// action: the backend call, then best-effort reminder scheduling, then an
// immediate confirmation notification. The registered state is settled
// before any side effect runs, so a reminder failure can never reverse it.
type RegistrationService struct {
	api       ports.RegistrationAPI
	reminders ports.ReminderScheduler
	local     ports.Announcer
	log       logger.Logger
}

func NewRegistrationService(
	api ports.RegistrationAPI,
	reminders ports.ReminderScheduler,
	local ports.Announcer,
	log logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		api:       api,
		reminders: reminders,
		local:     local,
		log:       log,
	}
}

// registrationReminders are the kinds scheduled after a successful
// registration, in invocation order.
var registrationReminders = []domain.ReminderKind{
	domain.ReminderDayBefore,
	domain.ReminderHourBefore,
}

// RegisterResult carries the settled registration state plus the message
// shown to the user for it.
type RegisterResult struct {
	Registered   bool
	Registration *domain.Registration
	Message      string
}

func (s *RegistrationService) Register(ctx context.Context, event *domain.Event, userID int64) (RegisterResult, error) {
	reg, err := s.api.RegisterForEvent(ctx, event.ID, userID)
	if err != nil {
		return RegisterResult{Message: failureMessage(err)}, err
	}

	result := RegisterResult{
		Registered:   true,
		Registration: reg,
		Message:      "You have successfully registered for " + event.Title + "!",
	}

	for _, kind := range registrationReminders {
		if _, err := s.reminders.Schedule(ctx, event, kind, userID); err != nil {
			s.log.Error("reminder scheduling failed",
				logger.Int64("event_id", event.ID),
				logger.String("kind", string(kind)),
				logger.String("error", err.Error()),
			)
		}
	}

	confirmation := notify.Notification{
		Title: "Registration Confirmed! 🎉",
		Body:  "You're all set for " + event.Title + ". We'll remind you before the event.",
		Data: map[string]string{
			"event_id": strconv.FormatInt(event.ID, 10),
			"type":     "registration_confirmed",
		},
	}
	if err := s.local.Send(ctx, confirmation); err != nil {
		s.log.Error("confirmation notification failed",
			logger.Int64("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}

	return result, nil
}

// IsRegistered checks the backend's registration record for (user, event).
func (s *RegistrationService) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	return s.api.RegistrationStatus(ctx, userID, eventID)
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrOwnEvent):
		return "You cannot register for your own event as the organizer."
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "You are already registered for this event."
	default:
		return "Unable to register for event. Please try again."
	}
}
