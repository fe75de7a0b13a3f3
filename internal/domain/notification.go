package domain

import (
	"encoding/json"
	"time"
)

// Notification is a server-owned feed entry. Read is the single canonical
// flag; older backends emit it as "read", newer ones as "is_read", so the
// ambiguity is resolved here at the JSON boundary instead of leaking into
// business logic.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	EventID   *int64    `json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		*alias
		IsRead *bool `json:"is_read"`
	}{alias: (*alias)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.IsRead != nil {
		n.Read = n.Read || *aux.IsRead
	}
	return nil
}
