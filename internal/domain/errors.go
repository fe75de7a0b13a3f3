package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrStageNotFound        = errors.New("stage not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrOwnEvent          = errors.New("organizers cannot register for their own event")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already in use")
)

var (
	ErrUnknownReminderKind = errors.New("unknown reminder kind")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("server not reachable")
)
