package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/dev-kelz/Event-Management-System/internal/reminder"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func registrationEvent() *domain.Event {
	return &domain.Event{
		ID:    5,
		Title: "Tech Meetup",
		Date:  time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC),
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	event := registrationEvent()
	reg := &domain.Registration{ID: 11, EventID: 5, UserID: 7}

	api.EXPECT().RegisterForEvent(mock.Anything, int64(5), int64(7)).Return(reg, nil)
	reminders.EXPECT().Schedule(mock.Anything, event, domain.ReminderDayBefore, int64(7)).
		Return(reminder.Outcome{LocalScheduled: true, BackendRecorded: true}, nil)
	reminders.EXPECT().Schedule(mock.Anything, event, domain.ReminderHourBefore, int64(7)).
		Return(reminder.Outcome{LocalScheduled: true, BackendRecorded: true}, nil)
	local.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.Title == "Registration Confirmed! 🎉" && n.Data["type"] == "registration_confirmed"
	})).Return(nil)

	result, err := svc.Register(context.Background(), event, 7)

	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.Equal(t, reg, result.Registration)
	assert.Equal(t, "You have successfully registered for Tech Meetup!", result.Message)
}

func TestRegistrationService_Register_OwnEvent(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	api.EXPECT().RegisterForEvent(mock.Anything, int64(5), int64(7)).
		Return(nil, domain.ErrOwnEvent)

	result, err := svc.Register(context.Background(), registrationEvent(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnEvent)
	assert.False(t, result.Registered)
	assert.Equal(t, "You cannot register for your own event as the organizer.", result.Message)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	api.EXPECT().RegisterForEvent(mock.Anything, int64(5), int64(7)).
		Return(nil, domain.ErrAlreadyRegistered)

	result, err := svc.Register(context.Background(), registrationEvent(), 7)

	require.Error(t, err)
	assert.False(t, result.Registered)
	assert.Equal(t, "You are already registered for this event.", result.Message)
}

func TestRegistrationService_Register_GenericFailure(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	api.EXPECT().RegisterForEvent(mock.Anything, int64(5), int64(7)).
		Return(nil, errors.New("connection refused"))

	result, err := svc.Register(context.Background(), registrationEvent(), 7)

	require.Error(t, err)
	assert.Equal(t, "Unable to register for event. Please try again.", result.Message)
}

func TestRegistrationService_Register_ReminderFailureDoesNotUnregister(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	event := registrationEvent()

	api.EXPECT().RegisterForEvent(mock.Anything, int64(5), int64(7)).
		Return(&domain.Registration{ID: 11}, nil)
	reminders.EXPECT().Schedule(mock.Anything, event, domain.ReminderDayBefore, int64(7)).
		Return(reminder.Outcome{}, errors.New("scheduling broken"))
	reminders.EXPECT().Schedule(mock.Anything, event, domain.ReminderHourBefore, int64(7)).
		Return(reminder.Outcome{}, errors.New("scheduling broken"))
	local.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("sink down"))

	result, err := svc.Register(context.Background(), event, 7)

	require.NoError(t, err, "side-effect failures never surface to the caller")
	assert.True(t, result.Registered)
}

func TestRegistrationService_IsRegistered(t *testing.T) {
	api := mocks.NewMockRegistrationAPI(t)
	reminders := mocks.NewMockReminderScheduler(t)
	local := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(api, reminders, local, newTestLogger(t))

	api.EXPECT().RegistrationStatus(mock.Anything, int64(7), int64(5)).Return(true, nil)

	registered, err := svc.IsRegistered(context.Background(), 7, 5)

	require.NoError(t, err)
	assert.True(t, registered)
}
