package todo

import "time"

// Todo represents a single tracked work item.
type Todo struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial title + timestamp).
	ID string `json:"id"`

	// Title is the short summary of the todo (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description,omitempty"`

	// Status is the coarse lifecycle state of the todo.
	Status Status `json:"status"`

	// WorkState is the live time-tracking state, driven by activities.
	WorkState WorkState `json:"work_state"`

	// TotalWorkTime is the accrued tracked time in whole seconds. It
	// never decreases; reopening a todo preserves it.
	TotalWorkTime int64 `json:"total_work_time"`

	// LastStateChangeAt is when the work state last changed (nil before
	// tracking first starts).
	LastStateChangeAt *time.Time `json:"last_state_change_at,omitempty"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// DueDate is when the todo is due (nil if none).
	DueDate *time.Time `json:"due_date,omitempty"`

	// ParentID is the ID of the parent todo in the subtask hierarchy
	// (empty for roots). Children are derived by scanning, never stored.
	ParentID string `json:"parent_id,omitempty"`

	// ProjectID optionally groups the todo into a project.
	ProjectID string `json:"project_id,omitempty"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the todo was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkActivity is an immutable time-tracking event for a todo.
type WorkActivity struct {
	// ID is a unique identifier for the activity.
	ID string `json:"id"`

	// TodoID is the todo this activity belongs to.
	TodoID string `json:"todo_id"`

	// Type is the kind of time-tracking event.
	Type ActivityType `json:"type"`

	// WorkTime is the number of whole seconds this event contributed to
	// the todo's total (nil when the event contributed no time).
	WorkTime *int64 `json:"work_time,omitempty"`

	// PreviousState is the work state before this event was applied.
	PreviousState WorkState `json:"previous_state"`

	// Note is an optional free-form annotation.
	Note string `json:"note,omitempty"`

	// WorkPeriodID optionally associates the activity with a work
	// period. The association is a plain pointer set and cleared
	// independently of the event's own fields.
	WorkPeriodID string `json:"work_period_id,omitempty"`

	// CreatedAt is when the activity was recorded.
	CreatedAt time.Time `json:"created_at"`
}
