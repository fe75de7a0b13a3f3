package domain

import "time"

// ReminderKind names a fixed offset before an event's start time.
type ReminderKind string

const (
	ReminderDayBefore    ReminderKind = "1_day_before"
	ReminderHourBefore   ReminderKind = "1_hour_before"
	Reminder30MinBefore  ReminderKind = "30_min_before"
)

// Offset returns the duration subtracted from the event date to get the
// fire time. ok is false for unrecognized kinds.
func (k ReminderKind) Offset() (time.Duration, bool) {
	switch k {
	case ReminderDayBefore:
		return 24 * time.Hour, true
	case ReminderHourBefore:
		return time.Hour, true
	case Reminder30MinBefore:
		return 30 * time.Minute, true
	default:
		return 0, false
	}
}

// Reminder is derived from an event at scheduling time; the client never
// persists it beyond the moment it is registered with the backend.
type Reminder struct {
	ID       int64        `json:"id,omitempty"`
	EventID  int64        `json:"event_id"`
	UserID   int64        `json:"user_id"`
	Kind     ReminderKind `json:"reminder_type"`
	RemindAt time.Time    `json:"remind_at"`
}
