// Package todo implements a local-first, hierarchical todo tracker with
// time tracking.
//
// Todos are stored as JSONL files in a per-project data directory. Each
// todo carries two independent lifecycles: a coarse status (pending,
// in_progress, completed) and a work state (idle, active, paused,
// completed) driven by time-tracking activities. Todos form a
// single-parent hierarchy via parent pointers and a many-to-many
// dependency DAG via an edge table; both relations are kept acyclic by
// construction.
//
// The public API mirrors the CLI commands:
//   - Create, Update, Delete for todo lifecycle
//   - Start, Pause, Complete, Discard, Reopen for time tracking
//   - Show, List, Ready for querying
//   - SetParent, AddSubtask, AddDependency, DependencyTree for the graph
//   - CreateTag, AttachTag for labeling
package todo

// Status represents the coarse lifecycle state of a todo.
type Status string

const (
	// StatusPending indicates the todo has not been started.
	StatusPending Status = "pending"

	// StatusInProgress indicates the todo is being worked on.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates the todo is finished.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// WorkState represents the live time-tracking state of a todo,
// independent of Status.
type WorkState string

const (
	// WorkStateIdle indicates no time tracking has started.
	WorkStateIdle WorkState = "idle"

	// WorkStateActive indicates time is currently accruing.
	WorkStateActive WorkState = "active"

	// WorkStatePaused indicates tracking is suspended.
	WorkStatePaused WorkState = "paused"

	// WorkStateCompleted indicates tracking is finished. It is terminal
	// until the todo is reopened.
	WorkStateCompleted WorkState = "completed"
)

// ValidWorkStates returns all valid work state values.
func ValidWorkStates() []WorkState {
	return []WorkState{WorkStateIdle, WorkStateActive, WorkStatePaused, WorkStateCompleted}
}

// IsValid returns true if the work state is a known valid value.
func (s WorkState) IsValid() bool {
	for _, valid := range ValidWorkStates() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a todo.
type Priority string

const (
	// PriorityLow is the lowest importance level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority (0 = most important).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(priority Priority) *Priority {
	return &priority
}

// ActivityType categorizes a time-tracking event.
type ActivityType string

const (
	// ActivityStarted begins (or resumes) time tracking.
	ActivityStarted ActivityType = "started"

	// ActivityPaused suspends time tracking and banks elapsed time.
	ActivityPaused ActivityType = "paused"

	// ActivityCompleted finishes time tracking and completes the todo.
	ActivityCompleted ActivityType = "completed"

	// ActivityDiscarded records elapsed time without changing the work
	// state. It is an annotation, not a transition.
	ActivityDiscarded ActivityType = "discarded"
)

// ValidActivityTypes returns all valid activity type values.
func ValidActivityTypes() []ActivityType {
	return []ActivityType{ActivityStarted, ActivityPaused, ActivityCompleted, ActivityDiscarded}
}

// IsValid returns true if the activity type is a known valid value.
func (t ActivityType) IsValid() bool {
	for _, valid := range ValidActivityTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a todo title.
const MaxTitleLength = 500
