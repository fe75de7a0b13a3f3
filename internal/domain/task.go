package domain

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          int64        `json:"id"`
	EventID     int64        `json:"event_id"`
	StageID     *int64       `json:"stage_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"is_completed"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedBy   int64        `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateTaskInput struct {
	EventID     int64
	StageID     *int64
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedBy   int64
}

// Stage is a named phase of an event's lifecycle used to group tasks.
type Stage struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// DefaultStages is the canonical set bootstrapped when the backend reports
// none, in this exact order.
var DefaultStages = []Stage{
	{Name: "Planning", Description: "Planning and preparation phase", Order: 0},
	{Name: "Promotion", Description: "Marketing and promotion phase", Order: 1},
	{Name: "Execution", Description: "Event execution phase", Order: 2},
	{Name: "Post-Event", Description: "Post-event follow-up", Order: 3},
}
