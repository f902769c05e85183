package todo

import (
	"fmt"
	"time"
)

// applyActivity applies a time-tracking event to a todo, mutating its
// work state and accrued time, and returns the resulting activity
// record. The guards run before any mutation, so a failed transition
// leaves the todo untouched.
//
// Elapsed time is always truncated toward zero to whole seconds. Every
// consumer of activity work times relies on this convention; statistics
// reconcile against Todo.TotalWorkTime only because both sides floor
// identically.
func applyActivity(item *Todo, activityType ActivityType, note string, now time.Time) (*WorkActivity, error) {
	previousState := item.WorkState

	switch activityType {
	case ActivityStarted:
		if previousState == WorkStateActive || previousState == WorkStateCompleted {
			return nil, fmt.Errorf("%w: cannot start from %q", ErrInvalidStateTransition, previousState)
		}
	case ActivityPaused:
		if previousState != WorkStateActive {
			return nil, fmt.Errorf("%w: cannot pause from %q", ErrInvalidStateTransition, previousState)
		}
	case ActivityCompleted:
		if previousState == WorkStateCompleted {
			return nil, fmt.Errorf("%w: already completed", ErrInvalidStateTransition)
		}
	case ActivityDiscarded:
		// No guard: discard is an annotation, not a transition.
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidActivityType, activityType)
	}

	activity := WorkActivity{
		ID:            GenerateID(item.ID+string(activityType), now),
		TodoID:        item.ID,
		Type:          activityType,
		PreviousState: previousState,
		Note:          note,
		CreatedAt:     now,
	}

	switch activityType {
	case ActivityStarted:
		item.WorkState = WorkStateActive
		item.LastStateChangeAt = &now
		if item.Status == StatusPending {
			item.Status = StatusInProgress
		}

	case ActivityPaused:
		elapsed := elapsedSeconds(item, now)
		activity.WorkTime = &elapsed
		item.TotalWorkTime += elapsed
		item.WorkState = WorkStatePaused
		item.LastStateChangeAt = &now

	case ActivityCompleted:
		if previousState == WorkStateActive {
			elapsed := elapsedSeconds(item, now)
			activity.WorkTime = &elapsed
			item.TotalWorkTime += elapsed
		}
		item.WorkState = WorkStateCompleted
		item.Status = StatusCompleted
		item.LastStateChangeAt = &now

	case ActivityDiscarded:
		// Banks elapsed time but deliberately leaves both the work state
		// and LastStateChangeAt alone.
		if previousState == WorkStateActive {
			elapsed := elapsedSeconds(item, now)
			activity.WorkTime = &elapsed
			item.TotalWorkTime += elapsed
		}
	}

	item.UpdatedAt = now
	return &activity, nil
}

// applyReopen resets a completed todo for further work. The accrued work
// time is preserved.
func applyReopen(item *Todo, now time.Time) error {
	if item.Status != StatusCompleted {
		return fmt.Errorf("%w: can only reopen a completed todo", ErrInvalidStateTransition)
	}
	item.Status = StatusPending
	item.WorkState = WorkStateIdle
	item.LastStateChangeAt = &now
	item.UpdatedAt = now
	return nil
}

// elapsedSeconds returns the whole seconds since the todo's last state
// change, floored, never negative.
func elapsedSeconds(item *Todo, now time.Time) int64 {
	if item.LastStateChangeAt == nil {
		return 0
	}
	elapsed := int64(now.Sub(*item.LastStateChangeAt) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
