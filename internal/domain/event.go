package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	TimeOfDay   string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Title       string
	Date        time.Time
	TimeOfDay   string
	Location    string
	Description string
	Category    string
	CreatedBy   int64
}

type UpdateEventInput struct {
	Title       *string
	Date        *time.Time
	TimeOfDay   *string
	Location    *string
	Description *string
	Category    *string
}

// IsOrganizer reports whether userID created the event. Client-side
// convenience only, not a security boundary.
func (e *Event) IsOrganizer(userID int64) bool {
	return e.CreatedBy == userID
}
