package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/stretchr/testify/assert"
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

type fakeLocal struct {
	scheduled []notify.Notification
	at        []time.Time
	err       error
}

func (f *fakeLocal) ScheduleAt(at time.Time, n notify.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.at = append(f.at, at)
	f.scheduled = append(f.scheduled, n)
	return nil
}

type fakeRegistrar struct {
	reminders []domain.Reminder
	err       error
}

func (f *fakeRegistrar) CreateReminder(_ context.Context, r domain.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.reminders = append(f.reminders, r)
	return nil
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:        42,
		Title:     "Launch Party",
		Date:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		TimeOfDay: "18:00",
	}
}

func TestScheduler_Schedule_Offsets(t *testing.T) {
	tests := []struct {
		kind domain.ReminderKind
		want time.Duration
	}{
		{domain.ReminderDayBefore, 24 * time.Hour},
		{domain.ReminderHourBefore, time.Hour},
		{domain.Reminder30MinBefore, 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			local := &fakeLocal{}
			registrar := &fakeRegistrar{}
			s := New(local, registrar, newTestLogger(t))

			event := testEvent()
			outcome, err := s.Schedule(context.Background(), event, tt.kind, 7)

			require.NoError(t, err)
			assert.True(t, outcome.LocalScheduled)
			assert.True(t, outcome.BackendRecorded)
			assert.Equal(t, event.Date.Add(-tt.want), outcome.RemindAt)

			require.Len(t, local.at, 1)
			assert.Equal(t, event.Date.Add(-tt.want), local.at[0])

			require.Len(t, registrar.reminders, 1)
			assert.Equal(t, int64(42), registrar.reminders[0].EventID)
			assert.Equal(t, int64(7), registrar.reminders[0].UserID)
			assert.Equal(t, tt.kind, registrar.reminders[0].Kind)
			assert.Equal(t, event.Date.Add(-tt.want), registrar.reminders[0].RemindAt)
		})
	}
}

func TestScheduler_Schedule_UnknownKind(t *testing.T) {
	local := &fakeLocal{}
	registrar := &fakeRegistrar{}
	s := New(local, registrar, newTestLogger(t))

	_, err := s.Schedule(context.Background(), testEvent(), "2_weeks_before", 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownReminderKind)
	assert.Empty(t, local.scheduled, "unknown kind must have no side effects")
	assert.Empty(t, registrar.reminders)
}

func TestScheduler_Schedule_LocalFailureStillRecordsBackend(t *testing.T) {
	local := &fakeLocal{err: errors.New("queue full")}
	registrar := &fakeRegistrar{}
	s := New(local, registrar, newTestLogger(t))

	outcome, err := s.Schedule(context.Background(), testEvent(), domain.ReminderHourBefore, 7)

	require.Error(t, err)
	assert.False(t, outcome.LocalScheduled)
	assert.True(t, outcome.BackendRecorded)
	assert.Len(t, registrar.reminders, 1)
}

func TestScheduler_Schedule_BackendFailureStillSchedulesLocally(t *testing.T) {
	local := &fakeLocal{}
	registrar := &fakeRegistrar{err: errors.New("503")}
	s := New(local, registrar, newTestLogger(t))

	outcome, err := s.Schedule(context.Background(), testEvent(), domain.ReminderDayBefore, 7)

	require.Error(t, err)
	assert.True(t, outcome.LocalScheduled)
	assert.False(t, outcome.BackendRecorded)
	assert.Len(t, local.scheduled, 1)
}

func TestMessageFor(t *testing.T) {
	event := testEvent()

	title, body := messageFor(event, domain.ReminderDayBefore)
	assert.Equal(t, "Tomorrow: Launch Party", title)
	assert.Equal(t, `Your event "Launch Party" is tomorrow at 18:00`, body)

	title, body = messageFor(event, domain.ReminderHourBefore)
	assert.Equal(t, "Starting Soon: Launch Party", title)
	assert.Equal(t, `Your event "Launch Party" starts in 1 hour`, body)

	title, body = messageFor(event, domain.Reminder30MinBefore)
	assert.Equal(t, "Starting Soon: Launch Party", title)
	assert.Equal(t, `Your event "Launch Party" starts in 30 minutes`, body)
}

func TestMessageFor_MissingTimeOfDay(t *testing.T) {
	event := testEvent()
	event.TimeOfDay = ""

	_, body := messageFor(event, domain.ReminderDayBefore)
	assert.Equal(t, `Your event "Launch Party" is tomorrow at TBD`, body)
}
